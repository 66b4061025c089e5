package interview

import (
	"strings"
	"testing"
)

func TestFullTextBlankProfile(t *testing.T) {
	for _, p := range []Profile{{}, {Experience: "  ", Position: "\t", Back: " ", LearningGoals: "\n"}} {
		got := p.FullText()
		want := "경력: 정보 없음\n희망 직무: 정보 없음\n"
		if got != want {
			t.Fatalf("FullText() = %q, want %q", got, want)
		}
	}
}

func TestFullTextIncludesOnlyPresentFields(t *testing.T) {
	p := Profile{
		Experience:        "3년",
		Position:          "Backend Developer",
		Back:              "Go, PostgreSQL",
		ProjectExperience: "결제 시스템 구축",
		Industry:          "핀테크",
	}
	want := "경력: 3년\n" +
		"희망 직무: Backend Developer\n" +
		"기술 스킬: 백엔드: Go, PostgreSQL.\n" +
		"주요 프로젝트 경험: 결제 시스템 구축\n" +
		"관심 업계: 핀테크\n"
	if got := p.FullText(); got != want {
		t.Fatalf("FullText() = %q, want %q", got, want)
	}
}

func TestCombinedSkills(t *testing.T) {
	tests := []struct {
		name string
		p    Profile
		want string
	}{
		{name: "empty", p: Profile{}, want: ""},
		{name: "whitespace only", p: Profile{Front: "  ", Etc: "\t"}, want: ""},
		{
			name: "fixed order",
			p:    Profile{Etc: "Git", DevOps: "Docker", Back: "Java", Front: "React"},
			want: "프론트엔드: React. 백엔드: Java. DevOps/인프라: Docker. 기타 기술: Git.",
		},
		{
			name: "skips blank middle",
			p:    Profile{Front: "Vue", Back: " ", Etc: "Figma"},
			want: "프론트엔드: Vue. 기타 기술: Figma.",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.CombinedSkills(); got != tc.want {
				t.Fatalf("CombinedSkills() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPromptsEmbedProfile(t *testing.T) {
	text := Profile{Position: "Backend Developer"}.FullText()
	for _, prompt := range []string{QuestionPrompt(text), LearningPathPrompt(text)} {
		if !strings.Contains(prompt, "희망 직무: Backend Developer") {
			t.Fatalf("prompt missing profile text:\n%s", prompt)
		}
	}
	if !strings.Contains(QuestionPrompt(text), "STAR") {
		t.Fatalf("question prompt should request a STAR question")
	}
	if strings.Count(LearningPathPrompt(text), "## ") != 4 {
		t.Fatalf("learning path prompt should show four sections")
	}
}
