package internal

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/langneg/pkg/health"
)

// healthConfig holds health check endpoint configuration.
type healthConfig struct {
	checks        health.Checks
	livenessPath  string
	readinessPath string
	timeout       time.Duration
}

// mount registers the probes outside the Context pipeline; they bypass
// language negotiation and the App error handler.
func (h *healthConfig) mount(r chi.Router, log *slog.Logger) {
	opts := []health.Option{health.WithLogger(log)}
	if h.timeout > 0 {
		opts = append(opts, health.WithTimeout(h.timeout))
	}
	r.Get(h.livenessPath, health.LivenessHandler())
	r.Get(h.readinessPath, health.ReadinessHandler(h.checks, opts...))
}

// Default health check paths.
const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

// HealthOption configures health check endpoints.
type HealthOption func(*healthConfig)

// WithLivenessPath sets a custom liveness endpoint path.
// Defaults to "/health/live".
func WithLivenessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.livenessPath = path
		}
	}
}

// WithReadinessPath sets a custom readiness endpoint path.
// Defaults to "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.readinessPath = path
		}
	}
}

// WithReadinessCheck adds a named readiness check.
// Checks run in parallel during readiness probe.
//
// Example:
//
//	langneg.WithReadinessCheck("redis", redis.Healthcheck(client))
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return func(c *healthConfig) {
		if c.checks == nil {
			c.checks = make(health.Checks)
		}
		c.checks[name] = fn
	}
}

// WithReadinessTimeout bounds each readiness check. Zero keeps the health package default.
func WithReadinessTimeout(d time.Duration) HealthOption {
	return func(c *healthConfig) {
		c.timeout = d
	}
}
