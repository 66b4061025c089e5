package interview

import (
	"reflect"
	"testing"
)

func TestParseQuestions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "five items",
			raw:  "1. 첫 번째 질문\n2. 두 번째 질문\n3. 세 번째 질문\n4. 네 번째 질문\n5. 다섯 번째 질문",
			want: []string{"첫 번째 질문", "두 번째 질문", "세 번째 질문", "네 번째 질문", "다섯 번째 질문"},
		},
		{
			name: "preamble and blank lines",
			raw:  "다음은 질문입니다:\n\n1.  A 질문  \n\n2. B 질문\n",
			want: []string{"A 질문", "B 질문"},
		},
		{
			name: "seven items keep first five",
			raw:  "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g",
			want: []string{"a", "b", "c", "d", "e"},
		},
		{
			name: "multi-line item collapses",
			raw:  "1. 첫 줄\n이어지는 줄\n2. 다음",
			want: []string{"첫 줄 이어지는 줄", "다음"},
		},
		{
			name: "crlf",
			raw:  "1. a\r\n2. b\r\n",
			want: []string{"a", "b"},
		},
		{
			name: "two digit markers",
			raw:  "10. ten\n11. eleven",
			want: []string{"ten", "eleven"},
		},
		{
			name: "marker only is skipped",
			raw:  "1.\n2. real",
			want: []string{"real"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseQuestions(tc.raw); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseQuestions() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestParseQuestionsWithoutNumbering(t *testing.T) {
	for _, raw := range []string{"", "질문이 없습니다.", "- a\n- b", "Q1) 무엇인가요?"} {
		if got := ParseQuestions(raw); len(got) != 0 {
			t.Fatalf("ParseQuestions(%q) = %#v, want empty", raw, got)
		}
	}
}

func TestFormatAsMarkup(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "list closed before paragraph",
			raw:  "## A\n- x\n- y\nZ",
			want: "<h3>A</h3>\n<ul>\n<li>x</li>\n<li>y</li>\n</ul>\n<p>Z</p>\n",
		},
		{
			name: "list closed at end of input",
			raw:  "- x\n- y",
			want: "<ul>\n<li>x</li>\n<li>y</li>\n</ul>\n",
		},
		{
			name: "heading closes list",
			raw:  "- x\n## B\n- y",
			want: "<ul>\n<li>x</li>\n</ul>\n<h3>B</h3>\n<ul>\n<li>y</li>\n</ul>\n",
		},
		{
			name: "blank lines and indentation ignored",
			raw:  "  ## A  \n\n   - x\n\n",
			want: "<h3>A</h3>\n<ul>\n<li>x</li>\n</ul>\n",
		},
		{
			name: "text is escaped",
			raw:  "- <script>&",
			want: "<ul>\n<li>&lt;script&gt;&amp;</li>\n</ul>\n",
		},
		{
			name: "empty",
			raw:  " \n\n",
			want: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatAsMarkup(tc.raw); got != tc.want {
				t.Fatalf("FormatAsMarkup() = %q, want %q", got, tc.want)
			}
		})
	}
}
