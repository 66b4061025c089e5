package interview

import "strings"

const noInfo = "정보 없음"

type labeledValue struct {
	label string
	value string
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// CombinedSkills joins the non-blank skill categories in frontend, backend,
// devops, other order as "<Label>: <value>. ".
func (p Profile) CombinedSkills() string {
	categories := []labeledValue{
		{"프론트엔드", p.Front},
		{"백엔드", p.Back},
		{"DevOps/인프라", p.DevOps},
		{"기타 기술", p.Etc},
	}
	var b strings.Builder
	for _, c := range categories {
		if isBlank(c.value) {
			continue
		}
		b.WriteString(c.label)
		b.WriteString(": ")
		b.WriteString(c.value)
		b.WriteString(". ")
	}
	return strings.TrimSpace(b.String())
}

// FullText renders the profile as labeled lines for prompt embedding.
// Experience and position always appear; every other line is omitted when blank.
func (p Profile) FullText() string {
	lines := []labeledValue{
		{"경력", valueOr(p.Experience, noInfo)},
		{"희망 직무", valueOr(p.Position, noInfo)},
		{"기술 스킬", p.CombinedSkills()},
		{"주요 프로젝트 경험", p.ProjectExperience},
		{"학습 목표 및 관심 분야", p.LearningGoals},
		{"선호 회사 규모", p.CompanySize},
		{"관심 업계", p.Industry},
	}
	var b strings.Builder
	for _, l := range lines {
		if isBlank(l.value) {
			continue
		}
		b.WriteString(l.label)
		b.WriteString(": ")
		b.WriteString(l.value)
		b.WriteByte('\n')
	}
	return b.String()
}

func valueOr(v, def string) string {
	if isBlank(v) {
		return def
	}
	return v
}
