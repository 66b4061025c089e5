package interview

import "errors"

var (
	ErrNoQuestions         = errors.New("no numbered questions in model output")
	ErrEmptyLearningPath   = errors.New("learning path output rendered no markup")
	ErrClientNotConfigured = errors.New("interview service has no llm client")
	ErrModelInfoMissing    = errors.New("model info not configured")
	ErrMissingPosition     = errors.New("position query parameter is required")
)

const (
	msgAnalysisFailed = "분석 처리 중 오류가 발생했습니다: "
	msgInternalError  = "서버 내부 오류가 발생했습니다: "
	msgInvalidBody    = "요청 본문을 해석할 수 없습니다: "
	msgSampleFailed   = "샘플 질문 생성에 실패했습니다: "
	msgModelInfo      = "모델 정보 조회에 실패했습니다: "
	msgHealthy        = "면접 분석 서비스가 정상적으로 작동 중입니다."
)
