package interview

import "fmt"

const questionPromptTemplate = `당신은 전문 면접관입니다. 다음 구직자 정보를 바탕으로 실제 면접에서 나올 법한 심층적인 질문 5개를 생성해주세요.

구직자 정보:
%s

요구사항:
1. 각 질문은 구직자의 경험과 기술 스택에 특화되어야 합니다
2. 기술적 깊이와 실무 적용 능력을 평가할 수 있는 질문이어야 합니다
3. 상황 기반 질문(STAR 방식)을 최소 1개 포함해주세요
4. 질문은 번호와 함께 명확하게 구분해주세요
5. 각 질문은 독립적으로 이해할 수 있고, 구체적이며 답변하기에 적절한 난이도여야 합니다

응답 형식:
1. [질문 내용]
2. [질문 내용]
3. [질문 내용]
4. [질문 내용]
5. [질문 내용]
`

const learningPathPromptTemplate = `당신은 전문 커리어 컨설턴트입니다. 다음 구직자 정보를 바탕으로 개인 맞춤형 학습 경로를 제안해주세요.

구직자 정보:
%s

요구사항:
1. 현재 보유 기술을 바탕으로 한 발전 방향 제시
2. 희망 직무에 필요한 추가 기술 스택 추천
3. 구체적인 학습 단계별 로드맵 제공
4. 실무 프로젝트 경험 쌓기 방안
5. 업계 트렌드를 반영한 최신 기술 포함
6. 학습 우선순위와 예상 소요 시간 제시

응답 형식:
## 단기 목표 (1-3개월)
- 학습 항목과 구체적인 방법

## 중기 목표 (3-6개월)
- 심화 학습 및 프로젝트 경험

## 장기 목표 (6개월 이상)
- 전문성 강화 및 리더십 개발

## 추천 리소스
- 온라인 강의, 책, 실습 프로젝트 등
`

// QuestionPrompt asks the model for exactly five numbered interview questions.
func QuestionPrompt(profileText string) string {
	return fmt.Sprintf(questionPromptTemplate, profileText)
}

// LearningPathPrompt asks the model for a four-section markdown roadmap.
func LearningPathPrompt(profileText string) string {
	return fmt.Sprintf(learningPathPromptTemplate, profileText)
}
