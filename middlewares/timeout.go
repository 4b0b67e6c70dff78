package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/langneg/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// TimeoutConfig configures the timeout middleware.
type TimeoutConfig struct {
	Skip    func(c internal.Context) bool
	Timeout time.Duration
}

// TimeoutOption configures TimeoutConfig.
type TimeoutOption func(*TimeoutConfig)

// WithTimeoutSkip bypasses the deadline for requests matching fn,
// e.g. streaming or metrics endpoints.
func WithTimeoutSkip(fn func(c internal.Context) bool) TimeoutOption {
	return func(cfg *TimeoutConfig) {
		cfg.Skip = fn
	}
}

// Timeout returns middleware that enforces a request deadline and returns a
// *TimeoutError when it passes.
//
// The deadline is set on the request context before next runs, so language
// resolvers (store lookups, async resolvers) observe it and negotiation aborts
// with the context error.
//
// The rest of the chain runs on its own goroutine with a detached copy of c.
// That goroutine keeps running after the deadline, so long operations should
// watch c.Done(), but it can no longer touch the response: its writes are
// dropped and report http.ErrHandlerTimeout.
func Timeout(timeout time.Duration, opts ...TimeoutOption) internal.Middleware {
	cfg := TimeoutConfig{Timeout: timeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if cfg.Skip != nil && cfg.Skip(c) {
				return next(c)
			}

			path := c.Request().URL.Path
			ctx, cancel := context.WithTimeout(c.Context(), cfg.Timeout)
			defer cancel()
			c.SetContext(ctx)

			detached, release := internal.Detach(c)
			done := make(chan error, 1)
			go func() { done <- next(detached) }()

			select {
			case err := <-done:
				detached.ResponseWriter().Reattach()
				return err
			case <-ctx.Done():
			}
			release()

			if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ctx.Err()
			}
			attrs := []any{"timeout", cfg.Timeout.String(), "path", path}
			if lang, ok := internal.PeekLanguage(ctx); ok {
				attrs = append(attrs, "language", lang.String())
			}
			c.LogWarn("request timeout", attrs...)
			return &TimeoutError{Duration: cfg.Timeout}
		}
	}
}
