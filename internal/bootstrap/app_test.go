package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/llm"
	"interview-backend/internal/llm/gemini"
	"interview-backend/internal/shared/config"
)

func TestBuildDevWithoutKeyUsesPlaceholder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Defaults()

	app, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := app.LLM.(llm.PlaceholderClient); !ok {
		t.Fatalf("expected placeholder client, got %T", app.LLM)
	}
	if app.Router == nil || app.InterviewHandler == nil {
		t.Fatalf("router not wired")
	}

	body := `{"experience":"신입","position":"Backend Developer","back":"Java, Spring"}`
	req := httptest.NewRequest(http.MethodPost, "/api/interview/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 fallback response, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		Success            bool     `json:"success"`
		InterviewQuestions []string `json:"interviewQuestions"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.Success || len(payload.InterviewQuestions) != 5 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestBuildProductionRequiresKey(t *testing.T) {
	cfg := config.Defaults()
	cfg.Env = "production"

	if _, err := Build(cfg); err == nil {
		t.Fatalf("expected error without GEMINI_API_KEY in production")
	}
}

func TestBuildLLMSelectsTransport(t *testing.T) {
	tests := []struct {
		transport string
		check     func(llm.Client) bool
	}{
		{transport: config.TransportREST, check: func(c llm.Client) bool { _, ok := c.(*gemini.Client); return ok }},
		{transport: config.TransportSDK, check: func(c llm.Client) bool { _, ok := c.(*gemini.SDKClient); return ok }},
	}
	for _, tc := range tests {
		t.Run(tc.transport, func(t *testing.T) {
			cfg := config.Defaults()
			cfg.Gemini.APIKey = "test-key"
			cfg.Gemini.Transport = tc.transport

			client, err := BuildLLM(context.Background(), cfg)
			if err != nil {
				t.Fatalf("BuildLLM: %v", err)
			}
			if !tc.check(client) {
				t.Fatalf("unexpected client type %T", client)
			}
		})
	}
}
