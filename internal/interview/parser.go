package interview

import (
	"html"
	"regexp"
	"strings"
)

const maxQuestions = 5

var (
	numberMarker = regexp.MustCompile(`^\d+\.`)
	lineBreaks   = regexp.MustCompile(`\n+`)
)

// ParseQuestions extracts at most five numbered questions from free text.
// An empty result means the model ignored the "1." numbering contract.
func ParseQuestions(raw string) []string {
	questions := make([]string, 0, maxQuestions)
	for _, block := range splitQuestionBlocks(normalizeNewlines(raw)) {
		trimmed := strings.TrimSpace(block)
		if !numberMarker.MatchString(trimmed) {
			continue
		}
		cleaned := strings.TrimSpace(numberMarker.ReplaceAllString(trimmed, ""))
		cleaned = strings.TrimSpace(lineBreaks.ReplaceAllString(cleaned, " "))
		if cleaned == "" {
			continue
		}
		questions = append(questions, cleaned)
		if len(questions) == maxQuestions {
			break
		}
	}
	return questions
}

// splitQuestionBlocks cuts text at blank lines ("\n\n") and before every line
// that opens with "<digits>.", consuming the separating newlines.
func splitQuestionBlocks(text string) []string {
	var blocks []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		if i+1 < len(text) && text[i+1] == '\n' {
			blocks = append(blocks, text[start:i])
			start = i + 2
			i++
			continue
		}
		if startsWithNumberMarker(text[i+1:]) {
			blocks = append(blocks, text[start:i])
			start = i + 1
		}
	}
	return append(blocks, text[start:])
}

func startsWithNumberMarker(s string) bool {
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	return digits > 0 && digits < len(s) && s[digits] == '.'
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// FormatAsMarkup converts loosely structured markdown into an HTML fragment of
// <h3>, <ul>/<li> and <p> elements. Lines matching neither "## " nor "- "
// become paragraphs, so no input is ever dropped.
func FormatAsMarkup(raw string) string {
	var b strings.Builder
	inList := false
	closeList := func() {
		if inList {
			b.WriteString("</ul>\n")
			inList = false
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "## "):
			closeList()
			writeElement(&b, "h3", line[len("## "):])
		case strings.HasPrefix(line, "- "):
			if !inList {
				b.WriteString("<ul>\n")
				inList = true
			}
			writeElement(&b, "li", line[len("- "):])
		default:
			closeList()
			writeElement(&b, "p", line)
		}
	}
	closeList()
	return b.String()
}

func writeElement(b *strings.Builder, tag, text string) {
	b.WriteString("<" + tag + ">")
	b.WriteString(html.EscapeString(strings.TrimSpace(text)))
	b.WriteString("</" + tag + ">\n")
}
