package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout     = 5 * time.Second
	defaultConcurrency = 8

	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// CheckFunc reports the health of one dependency.
// redis.Healthcheck, db.Healthcheck and prefstore stores all return this shape.
type CheckFunc func(ctx context.Context) error

// Checks is a set of named checks.
type Checks map[string]CheckFunc

// Response is the aggregated readiness result.
type Response struct {
	Checks map[string]Check `json:"checks,omitempty"`
	Status string           `json:"status"`
}

// Check is the outcome of a single named check.
type Check struct {
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	Duration string `json:"duration"`
}

type config struct {
	logger      *slog.Logger
	timeout     time.Duration
	concurrency int
}

// Option configures Run and ReadinessHandler.
type Option func(*config)

// WithTimeout bounds the whole check run.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithConcurrency limits how many checks run at once.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		timeout:     defaultTimeout,
		concurrency: defaultConcurrency,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Run executes the checks concurrently and aggregates the result.
// A check still running when the timeout passes is reported with ErrCheckTimeout.
func Run(ctx context.Context, checks Checks, opts ...Option) *Response {
	return runChecks(ctx, checks, newConfig(opts...))
}

// Err returns nil for a healthy response and an ErrCheckFailed-wrapped error
// naming the failed checks otherwise.
func (r *Response) Err() error {
	if r.Status == StatusHealthy {
		return nil
	}
	var errs []error
	for name, c := range r.Checks {
		if c.Status == StatusUnhealthy {
			errs = append(errs, fmt.Errorf("%s: %s", name, c.Error))
		}
	}
	return fmt.Errorf("%w: %w", ErrCheckFailed, errors.Join(errs...))
}

func runChecks(ctx context.Context, checks Checks, cfg *config) *Response {
	resp := &Response{Status: StatusHealthy}
	if len(checks) == 0 {
		return resp
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var mu sync.Mutex
	resp.Checks = make(map[string]Check, len(checks))

	// Checks never return errors to the group; one failure must not cancel the others.
	var g errgroup.Group
	g.SetLimit(cfg.concurrency)

	for name, check := range checks {
		g.Go(func() error {
			start := time.Now()
			err := check(ctx)
			if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				err = fmt.Errorf("%w: %w", ErrCheckTimeout, err)
			}

			result := Check{Status: StatusHealthy, Duration: time.Since(start).String()}
			if err != nil {
				result.Status = StatusUnhealthy
				result.Error = err.Error()
				cfg.logger.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.String("error", err.Error()),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			resp.Checks[name] = result
			if err != nil {
				resp.Status = StatusUnhealthy
			}
			return nil
		})
	}
	_ = g.Wait()

	return resp
}
