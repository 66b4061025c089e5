package gemini

import (
	"fmt"
	"strings"
)

// ModelInfo describes a model for reporting endpoints and result metadata.
type ModelInfo struct {
	ID          string
	DisplayName string
	Description string
}

var knownModels = map[string]ModelInfo{
	"gemini-2.5-flash": {
		ID:          "gemini-2.5-flash",
		DisplayName: "Google Gemini 2.5 Flash",
		Description: "Google Gemini 2.5 Flash Latest - 면접 질문 생성 및 학습 경로 추천에 최적화된 모델",
	},
	"gemini-2.5-pro": {
		ID:          "gemini-2.5-pro",
		DisplayName: "Google Gemini 2.5 Pro",
		Description: "Google Gemini 2.5 Pro - 면접 질문 생성 및 학습 경로 추천에 최적화된 모델",
	},
}

// Describe returns reporting details for a model identifier.
func Describe(model string) ModelInfo {
	id := strings.TrimSpace(model)
	if id == "" {
		id = DefaultModel
	}
	if info, ok := knownModels[id]; ok {
		return info
	}
	return ModelInfo{
		ID:          id,
		DisplayName: "Google " + id,
		Description: fmt.Sprintf("Google %s - 면접 질문 생성 및 학습 경로 추천에 최적화된 모델", id),
	}
}
