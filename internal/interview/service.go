package interview

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"interview-backend/internal/llm"
	"interview-backend/internal/shared/metrics"
	"interview-backend/internal/shared/telemetry"
)

const timestampLayout = "2006-01-02T15:04:05.999"

var tracer = otel.Tracer("interview-backend/interview")

// Service turns profiles into interview questions and learning paths.
type Service struct {
	LLM              llm.Client
	ModelName        string
	ModelDescription string
	Now              func() time.Time
}

// NewService constructs a Service.
func NewService(client llm.Client, modelName, modelDescription string) *Service {
	return &Service{
		LLM:              client,
		ModelName:        modelName,
		ModelDescription: modelDescription,
		Now:              time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Analyze generates questions and a learning path concurrently. Gateway and
// parse failures are replaced by fallback content inside each branch; only a
// failure while assembling the result yields a failed Result. A non-nil error
// means the service itself is unusable.
func (s *Service) Analyze(ctx context.Context, p Profile) (Result, error) {
	if s == nil || s.LLM == nil {
		return Result{}, ErrClientNotConfigured
	}
	ctx, span := tracer.Start(ctx, "interview.analyze")
	defer span.End()

	start := s.now()
	metrics.IncAnalysisStarted()
	profileText := p.FullText()

	var (
		questions    []string
		learningPath string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer recoverBranch("questions", &err)
		questions = s.questions(gctx, profileText)
		return nil
	})
	g.Go(func() (err error) {
		defer recoverBranch("learning_path", &err)
		learningPath = s.learningPath(gctx, profileText)
		return nil
	})

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		metrics.IncAnalysisFailed()
		span.RecordError(err)
		span.SetStatus(codes.Error, "analysis failed")
		telemetry.Error("interview.analyze.failed", map[string]any{
			"position": p.Position,
			"error":    err.Error(),
		})
		return Failure(msgAnalysisFailed + err.Error()), nil
	}

	finished := s.now()
	elapsed := finished.Sub(start)
	metadata := &Metadata{
		ProcessingTimeMs:  elapsed.Milliseconds(),
		AIModel:           s.ModelName,
		QualityScore:      QualityScore(p),
		AnalysisTimestamp: finished.Format(timestampLayout),
		Priority:          DeterminePriority(p),
		ExtractedKeywords: ExtractKeywords(p),
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(elapsed.Milliseconds()))
	span.SetAttributes(
		attribute.Int("interview.questions", len(questions)),
		attribute.Int("interview.quality_score", metadata.QualityScore),
	)
	telemetry.Info("interview.analyze.complete", map[string]any{
		"position":           p.Position,
		"experience":         p.Experience,
		"question_count":     len(questions),
		"learning_path_len":  len(learningPath),
		"quality_score":      metadata.QualityScore,
		"priority":           string(metadata.Priority),
		"processing_time_ms": metadata.ProcessingTimeMs,
	})

	return Success(questions, learningPath, metadata), nil
}

func (s *Service) questions(ctx context.Context, profileText string) []string {
	qs, err := s.generateQuestions(ctx, profileText)
	if err != nil {
		metrics.IncFallback(metrics.BranchQuestions)
		telemetry.Warn("interview.questions.fallback", map[string]any{
			"error":   err.Error(),
			"gateway": llm.IsGatewayError(err),
		})
		return DefaultQuestions()
	}
	return qs
}

func (s *Service) generateQuestions(ctx context.Context, profileText string) ([]string, error) {
	raw, err := s.LLM.Complete(ctx, QuestionPrompt(profileText))
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}
	telemetry.Debug("interview.questions.raw", map[string]any{
		"chars":   len(raw),
		"preview": preview(raw, 500),
	})
	qs := ParseQuestions(raw)
	if len(qs) == 0 {
		return nil, ErrNoQuestions
	}
	return qs, nil
}

func (s *Service) learningPath(ctx context.Context, profileText string) string {
	path, err := s.generateLearningPath(ctx, profileText)
	if err != nil {
		metrics.IncFallback(metrics.BranchLearningPath)
		telemetry.Warn("interview.learning_path.fallback", map[string]any{
			"error":   err.Error(),
			"gateway": llm.IsGatewayError(err),
		})
		return DefaultLearningPath()
	}
	return path
}

func (s *Service) generateLearningPath(ctx context.Context, profileText string) (string, error) {
	raw, err := s.LLM.Complete(ctx, LearningPathPrompt(profileText))
	if err != nil {
		return "", fmt.Errorf("generate learning path: %w", err)
	}
	telemetry.Debug("interview.learning_path.raw", map[string]any{
		"chars":   len(raw),
		"preview": preview(raw, 300),
	})
	markup := FormatAsMarkup(raw)
	if markup == "" {
		return "", ErrEmptyLearningPath
	}
	return markup, nil
}

// SampleQuestions returns templated questions without calling the model.
func (s *Service) SampleQuestions(position, experience string) Result {
	return Success(SampleQuestions(position, experience), SampleLearningPath(), nil)
}

// ModelInfo describes the configured generation model.
func (s *Service) ModelInfo() (string, error) {
	if s == nil || strings.TrimSpace(s.ModelDescription) == "" {
		return "", ErrModelInfoMissing
	}
	return s.ModelDescription, nil
}

func recoverBranch(branch string, err *error) {
	if rec := recover(); rec != nil {
		telemetry.Error("interview.branch.panic", map[string]any{
			"branch": branch,
			"panic":  fmt.Sprint(rec),
			"stack":  string(debug.Stack()),
		})
		*err = fmt.Errorf("%s branch panicked: %v", branch, rec)
	}
}

func preview(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
