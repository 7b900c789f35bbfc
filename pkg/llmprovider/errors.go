package llmprovider

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the provider rejected the request itself
	ErrInvalidRequest = errors.New("invalid request")

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

// classifyStatus wraps an upstream HTTP failure with the matching sentinel.
func classifyStatus(provider string, status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		err = fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
	case status >= 400 && status < 500:
		err = fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return &ProviderError{Provider: provider, Err: err}
}
