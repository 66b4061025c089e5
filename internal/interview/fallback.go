package interview

const defaultLearningPath = `<h3>단기 목표 (1-3개월)</h3>
<ul>
<li>기본 기술 스택 복습 및 심화 학습</li>
<li>포트폴리오 프로젝트 1개 완성</li>
</ul>
<h3>중기 목표 (3-6개월)</h3>
<ul>
<li>실무 프로젝트 경험 쌓기</li>
<li>새로운 기술 스택 학습</li>
</ul>
<h3>장기 목표 (6개월 이상)</h3>
<ul>
<li>전문성 강화 및 깊이 있는 학습</li>
<li>커뮤니티 활동 및 지식 공유</li>
</ul>
<h3>추천 리소스</h3>
<ul>
<li>공식 문서와 온라인 강의</li>
<li>오픈소스 프로젝트 기여</li>
</ul>
`

const sampleLearningPath = "<h3>기본 학습 가이드</h3><ul><li>기초 역량 강화</li><li>실무 경험 쌓기</li></ul>"

// DefaultQuestions returns the generic question set used when generation fails.
// A fresh slice is returned on every call.
func DefaultQuestions() []string {
	return []string{
		"자기소개를 간단히 해주세요.",
		"이 직무에 지원한 이유는 무엇인가요?",
		"가장 기억에 남는 프로젝트 경험을 설명해주세요.",
		"어려운 기술적 문제를 해결한 경험이 있나요?",
		"앞으로의 커리어 목표는 무엇인가요?",
	}
}

// DefaultLearningPath returns the static roadmap used when generation fails.
func DefaultLearningPath() string {
	return defaultLearningPath
}

// SampleQuestions templates five questions from position and experience without
// calling the model.
func SampleQuestions(position, experience string) []string {
	return []string{
		position + " 직무에 대한 이해도를 설명해주세요.",
		experience + " 경력으로서 가장 도전적이었던 프로젝트는 무엇인가요?",
		"팀워크 경험과 협업 시 중요하게 생각하는 점은 무엇인가요?",
		"기술적 성장을 위해 어떤 노력을 하고 계신가요?",
		"향후 " + position + " 분야에서의 목표는 무엇인가요?",
	}
}

// SampleLearningPath is the short fragment returned alongside sample questions.
func SampleLearningPath() string {
	return sampleLearningPath
}
