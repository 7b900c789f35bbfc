package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"task-management/pkg/log"
)

// Manager runs a request against providers in priority order.
type Manager struct {
	providers []Provider
	cfg       Config
	l         log.Logger
}

// Config controls retry and fallback across providers.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	// MaxRetryDelay caps the linear backoff between attempts. Zero means no cap.
	MaxRetryDelay time.Duration
	// MaxTotalTimeout bounds the whole chain, retries included.
	MaxTotalTimeout time.Duration
}

// NewManager builds a manager over providers, which must already be sorted by priority.
func NewManager(providers []Provider, cfg *Config, l log.Logger) *Manager {
	m := &Manager{providers: providers, l: l}
	if cfg != nil {
		m.cfg = *cfg
	}
	return m
}

// Providers returns the provider names in the order they are tried.
func (m *Manager) Providers() []string {
	names := make([]string, len(m.providers))
	for i, p := range m.providers {
		names[i] = p.Name()
	}
	return names
}

// GenerateContent returns the first successful answer. On failure the
// returned error wraps ErrAllProvidersFailed and every provider error.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.cfg.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.MaxTotalTimeout)
		defer cancel()
	}

	var errs []error
	for _, p := range m.providers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		resp, err := m.attempt(ctx, p, req)
		if err == nil {
			m.logUsage(ctx, p, resp)
			return resp, nil
		}

		m.l.Warnf(ctx, "llmprovider.Manager.GenerateContent %s/%s: %v", p.Name(), p.Model(), err)
		errs = append(errs, err)

		if !m.cfg.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(errs...))
}

// attempt retries one provider. Rejected and rate limited requests move
// straight on to the next provider.
func (m *Manager) attempt(ctx context.Context, p Provider, req *Request) (*Response, error) {
	attempts := max(m.cfg.RetryAttempts, 1)

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			if err := sleep(ctx, m.backoff(i)); err != nil {
				return nil, err
			}
		}

		resp, err := p.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrProviderRateLimited) {
			break
		}
	}
	return nil, lastErr
}

func (m *Manager) backoff(attempt int) time.Duration {
	d := time.Duration(attempt) * m.cfg.RetryDelay
	if m.cfg.MaxRetryDelay > 0 && d > m.cfg.MaxRetryDelay {
		return m.cfg.MaxRetryDelay
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) logUsage(ctx context.Context, p Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.l.Infof(ctx, "llmprovider.Manager.GenerateContent: provider=%s model=%s input_tokens=%d output_tokens=%d",
		p.Name(), p.Model(), in, out)
}
