package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"interview-backend/internal/llm"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"
	DefaultTimeout = 60 * time.Second

	// maxResponseBytes bounds how much of an upstream body is buffered.
	maxResponseBytes = 10 << 20
)

var tracer = otel.Tracer("interview-backend/llm/gemini")

// Options tunes a gateway client. Zero values fall back to defaults.
type Options struct {
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.BaseURL) == "" {
		o.BaseURL = DefaultBaseURL
	}
	o.BaseURL = strings.TrimRight(strings.TrimSpace(o.BaseURL), "/")
	if strings.TrimSpace(o.Model) == "" {
		o.Model = DefaultModel
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

// Client implements llm.Client over the generateContent REST endpoint.
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewClient constructs a REST gateway client.
func NewClient(apiKey string, opts Options) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	opts = opts.withDefaults()
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		apiKey:     apiKey,
		model:      opts.Model,
		endpoint:   fmt.Sprintf("%s/v1beta/models/%s:generateContent", opts.BaseURL, url.PathEscape(opts.Model)),
		httpClient: httpClient,
	}, nil
}

// Model returns the model identifier sent upstream.
func (c *Client) Model() string {
	return c.model
}

type textPart struct {
	Text string `json:"text"`
}

type content struct {
	Parts []textPart `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type candidate struct {
	Content *content `json:"content"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
	Error      *apiError   `json:"error,omitempty"`
}

// text returns candidates[0].content.parts[0].text.
func (r generateResponse) text() (string, bool) {
	if len(r.Candidates) == 0 {
		return "", false
	}
	first := r.Candidates[0].Content
	if first == nil || len(first.Parts) == 0 {
		return "", false
	}
	text := first.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// Complete sends the prompt and returns the first candidate's text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, span := tracer.Start(ctx, "gemini.generateContent",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("llm.model", c.model),
			attribute.Int("llm.prompt_chars", len(prompt)),
		),
	)
	defer span.End()

	text, err := c.complete(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generateContent failed")
		return "", err
	}
	span.SetAttributes(attribute.Int("llm.response_chars", len(text)))
	return text, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []textPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", &llm.GatewayError{Kind: llm.KindTransport, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"?key="+url.QueryEscape(c.apiKey), bytes.NewReader(payload))
	if err != nil {
		return "", &llm.GatewayError{Kind: llm.KindTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &llm.GatewayError{Kind: llm.KindTransport, Err: redactKey(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return "", &llm.GatewayError{Kind: llm.KindTransport, StatusCode: resp.StatusCode, Err: err}
	}
	if len(body) > maxResponseBytes {
		return "", &llm.GatewayError{Kind: llm.KindMalformed, StatusCode: resp.StatusCode, Err: fmt.Errorf("response exceeds %d bytes", maxResponseBytes)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &llm.GatewayError{Kind: llm.KindStatus, StatusCode: resp.StatusCode, Err: statusError(body)}
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &llm.GatewayError{Kind: llm.KindMalformed, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if parsed.Error != nil {
		return "", &llm.GatewayError{Kind: llm.KindStatus, StatusCode: resp.StatusCode, Err: fmt.Errorf("%s: %s", parsed.Error.Status, parsed.Error.Message)}
	}
	text, ok := parsed.text()
	if !ok {
		return "", &llm.GatewayError{Kind: llm.KindMalformed, StatusCode: resp.StatusCode, Err: llm.ErrEmptyResponse}
	}
	return text, nil
}

func statusError(body []byte) error {
	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != nil {
		return fmt.Errorf("%s: %s", parsed.Error.Status, parsed.Error.Message)
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 512 {
		msg = msg[:512]
	}
	if msg == "" {
		msg = "empty body"
	}
	return errors.New(msg)
}

// redactKey strips the query string from transport errors so the API key never reaches logs.
func redactKey(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
			u.RawQuery = ""
			urlErr.URL = u.String()
		}
	}
	return err
}

var _ llm.Client = (*Client)(nil)
