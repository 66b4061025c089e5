package bootstrap

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/interview"
	"interview-backend/internal/llm"
	"interview-backend/internal/llm/gemini"
	"interview-backend/internal/shared/config"
	"interview-backend/internal/shared/server"
	"interview-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	LLM              llm.Client
	InterviewService *interview.Service
	InterviewHandler *interview.Handler
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	client, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	modelID := cfg.Gemini.Model
	if strings.TrimSpace(modelID) == "" {
		modelID = gemini.DefaultModel
	}
	info := gemini.Describe(modelID)

	app := &App{
		Config:           cfg,
		LLM:              client,
		InterviewService: interview.NewService(client, info.DisplayName, info.Description),
	}
	app.InterviewHandler = interview.NewHandler(app.InterviewService)
	app.Router = server.NewRouter(server.RouterDeps{
		Config:    app.Config,
		Interview: app.InterviewHandler,
	})
	return app, nil
}

// BuildLLM constructs the configured gateway client without wiring routes.
func BuildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	return buildLLM(ctx, cfg)
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.Gemini.APIKey) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.llm.placeholder", map[string]any{
				"reason": "GEMINI_API_KEY empty; every analysis will use fallback content",
			})
			return llm.PlaceholderClient{}, nil
		}
		return nil, errors.New("GEMINI_API_KEY is required outside dev")
	}

	opts := gemini.Options{
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
		Timeout: time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second,
	}
	if cfg.Gemini.Transport == config.TransportSDK {
		telemetry.Info("bootstrap.llm", map[string]any{"transport": "sdk", "model": opts.Model})
		return gemini.NewSDKClient(ctx, cfg.Gemini.APIKey, opts)
	}
	telemetry.Info("bootstrap.llm", map[string]any{"transport": "rest", "model": opts.Model})
	return gemini.NewClient(cfg.Gemini.APIKey, opts)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "":
		return true
	default:
		return false
	}
}
