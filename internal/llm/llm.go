package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client abstracts text-generation providers.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Kind classifies why a generation call failed.
type Kind string

const (
	KindTransport Kind = "transport"
	KindStatus    Kind = "http_status"
	KindMalformed Kind = "malformed_response"
)

// GatewayError is returned by every Client implementation when a call fails.
// Callers recover from it locally; it never reaches the end user on its own.
type GatewayError struct {
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *GatewayError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm gateway %s (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("llm gateway %s: %v", e.Kind, e.Err)
}

func (e *GatewayError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsGatewayError reports whether err carries a GatewayError.
func IsGatewayError(err error) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr)
}

var (
	// ErrNotConfigured is returned by the placeholder client.
	ErrNotConfigured = errors.New("llm client not configured")
	// ErrEmptyResponse means the provider answered without candidate text.
	ErrEmptyResponse = errors.New("response missing candidates[0].content.parts[0].text")
)

// PlaceholderClient stands in when no provider credentials are configured.
type PlaceholderClient struct{}

// Complete always fails so callers fall back to static content.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", &GatewayError{Kind: KindTransport, Err: ErrNotConfigured}
}

var _ Client = PlaceholderClient{}
