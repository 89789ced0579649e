package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"course-compass/pkg/gemini"
	"course-compass/pkg/openai"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// classify tags a client error with ErrProviderTimeout or
// ErrProviderRateLimited when it matches, and wraps it in a ProviderError.
func classify(provider string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		err = fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	case statusCode(err) == http.StatusTooManyRequests:
		err = fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
	}

	return &ProviderError{Provider: provider, Err: err}
}

func statusCode(err error) int {
	var oaErr *openai.APIError
	if errors.As(err, &oaErr) {
		return oaErr.StatusCode
	}
	var gmErr *gemini.APIError
	if errors.As(err, &gmErr) {
		return gmErr.StatusCode
	}
	return 0
}
