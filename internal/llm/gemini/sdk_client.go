package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"interview-backend/internal/llm"
)

// SDKClient implements llm.Client with the google.golang.org/genai SDK.
type SDKClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewSDKClient constructs an SDK-backed gateway client.
func NewSDKClient(ctx context.Context, apiKey string, opts Options) (*SDKClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	baseURL := strings.TrimSpace(opts.BaseURL)
	opts = opts.withDefaults()

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL + "/"}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return &SDKClient{client: client, model: opts.Model, timeout: opts.Timeout}, nil
}

// Model returns the model identifier sent upstream.
func (c *SDKClient) Model() string {
	return c.model
}

// Complete sends the prompt through the SDK and returns the first candidate's text.
func (c *SDKClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, span := tracer.Start(ctx, "gemini.sdk.generateContent",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("llm.model", c.model)),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generateContent failed")
		return "", &llm.GatewayError{Kind: llm.KindTransport, Err: err}
	}
	text, ok := firstCandidateText(resp)
	if !ok {
		span.SetStatus(codes.Error, "empty response")
		return "", &llm.GatewayError{Kind: llm.KindMalformed, Err: llm.ErrEmptyResponse}
	}
	return text, nil
}

func firstCandidateText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", false
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil {
		return "", false
	}
	text := content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

var _ llm.Client = (*SDKClient)(nil)
