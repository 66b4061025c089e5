package interview

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/llm"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api/interview"))
	return router
}

func postAnalyze(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/interview/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeResult(t *testing.T, resp *httptest.ResponseRecorder) Result {
	t.Helper()
	var result Result
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v (%s)", err, resp.Body.String())
	}
	return result
}

func TestAnalyzeEndToEnd(t *testing.T) {
	router := newTestRouter(newTestService(fakeLLM{questions: reply(mockQuestions), path: reply(mockLearningPath)}))

	resp := postAnalyze(router, `{"position":"Backend Developer","experience":"신입"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	result := decodeResult(t, resp)
	if !result.Success {
		t.Fatalf("expected success: %+v", result)
	}
	if len(result.InterviewQuestions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(result.InterviewQuestions))
	}
	if got := strings.Count(result.LearningPath, "<h3>"); got != 4 {
		t.Fatalf("expected 4 headings, got %d", got)
	}
	if result.Metadata == nil || result.Metadata.Priority != PriorityHigh {
		t.Fatalf("expected HIGH priority, got %+v", result.Metadata)
	}
	if score := result.Metadata.QualityScore; score < 5 || score > 8 {
		t.Fatalf("quality score %d out of range", score)
	}
}

func TestAnalyzeResponseShape(t *testing.T) {
	router := newTestRouter(newTestService(fakeLLM{questions: reply(mockQuestions), path: reply(mockLearningPath)}))

	resp := postAnalyze(router, `{"position":"Backend Developer"}`)
	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := payload["errorMessage"]; ok {
		t.Fatalf("success response should omit errorMessage: %v", payload)
	}
	md, ok := payload["metadata"].(map[string]any)
	if !ok {
		t.Fatalf("missing metadata: %v", payload)
	}
	for _, key := range []string{"processingTimeMs", "aiModel", "qualityScore", "analysisTimestamp", "priority", "extractedKeywords"} {
		if _, ok := md[key]; !ok {
			t.Fatalf("metadata missing %s", key)
		}
	}
}

func TestAnalyzeRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(newTestService(llm.PlaceholderClient{}))

	for _, body := range []string{`{"position":`, `[]`, `{"position": 3}`} {
		resp := postAnalyze(router, body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, resp.Code)
		}
		result := decodeResult(t, resp)
		if result.Success || !strings.HasPrefix(result.ErrorMessage, msgInvalidBody) {
			t.Fatalf("body %s: unexpected failure %+v", body, result)
		}
	}
}

func TestAnalyzeFailureStatuses(t *testing.T) {
	panicking := newTestService(fakeLLM{
		questions: func(context.Context) (string, error) { panic("boom") },
		path:      reply(mockLearningPath),
	})
	resp := postAnalyze(newTestRouter(panicking), `{}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("failed analysis: expected 400, got %d", resp.Code)
	}
	if result := decodeResult(t, resp); !strings.HasPrefix(result.ErrorMessage, msgAnalysisFailed) {
		t.Fatalf("unexpected message %q", result.ErrorMessage)
	}

	resp = postAnalyze(newTestRouter(NewService(nil, "", "")), `{}`)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("unconfigured service: expected 500, got %d", resp.Code)
	}
	if result := decodeResult(t, resp); !strings.HasPrefix(result.ErrorMessage, msgInternalError) {
		t.Fatalf("unexpected message %q", result.ErrorMessage)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(newTestService(llm.PlaceholderClient{}))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/interview/health", nil))

	if resp.Code != http.StatusOK || resp.Body.String() != msgHealthy {
		t.Fatalf("unexpected health response %d %q", resp.Code, resp.Body.String())
	}
}

func TestModelInfo(t *testing.T) {
	router := newTestRouter(NewService(llm.PlaceholderClient{}, "m", "Gemini 설명"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/interview/model-info", nil))
	if resp.Code != http.StatusOK || resp.Body.String() != "Gemini 설명" {
		t.Fatalf("unexpected model-info response %d %q", resp.Code, resp.Body.String())
	}

	router = newTestRouter(NewService(llm.PlaceholderClient{}, "m", ""))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/interview/model-info", nil))
	if resp.Code != http.StatusInternalServerError || !strings.HasPrefix(resp.Body.String(), msgModelInfo) {
		t.Fatalf("unexpected model-info failure %d %q", resp.Code, resp.Body.String())
	}
}

func TestSampleQuestionsEndpoint(t *testing.T) {
	router := newTestRouter(newTestService(llm.PlaceholderClient{}))

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantSecond string
	}{
		{name: "defaults experience", query: "?position=Backend", wantStatus: http.StatusOK, wantSecond: EntryLevel + " "},
		{name: "explicit experience", query: "?position=Backend&experience=3%EB%85%84", wantStatus: http.StatusOK, wantSecond: "3년 "},
		{name: "missing position", query: "?experience=3%EB%85%84", wantStatus: http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/interview/sample-questions"+tc.query, nil))
			if resp.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, resp.Code)
			}
			result := decodeResult(t, resp)
			if tc.wantStatus != http.StatusOK {
				if result.Success || !strings.HasPrefix(result.ErrorMessage, msgSampleFailed) {
					t.Fatalf("unexpected failure %+v", result)
				}
				return
			}
			if !result.Success || len(result.InterviewQuestions) != 5 || result.Metadata != nil {
				t.Fatalf("unexpected sample result %+v", result)
			}
			if !strings.HasPrefix(result.InterviewQuestions[1], tc.wantSecond) {
				t.Fatalf("second question %q should start with %q", result.InterviewQuestions[1], tc.wantSecond)
			}
			if result.LearningPath != SampleLearningPath() {
				t.Fatalf("unexpected learning path %q", result.LearningPath)
			}
		})
	}
}
