package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Release     string `env:"SENTRY_RELEASE"`
	// MinLevel determines which log levels to send to Sentry (e.g., slog.LevelWarn for warnings+errors)
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
}

// NewWithSentry creates a logger that sends logs to both stdout and Sentry.
// If DSN is empty, only stdout logging is enabled (graceful fallback for local dev).
// Context extractors, such as the negotiated language, are applied to both destinations.
func NewWithSentry(cfg SentryConfig, logCfg Config, extractors ...ContextExtractor) (*slog.Logger, error) {
	stdoutHandler, err := newHandler(logCfg, os.Stdout)
	if err != nil {
		return nil, err
	}

	if cfg.DSN == "" {
		return NewWithHandler(stdoutHandler, extractors...), nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		// Graceful degradation: log to stdout if Sentry init fails
		slog.New(stdoutHandler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return NewWithHandler(stdoutHandler, extractors...), nil
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError}, // Errors create Issues in Sentry
		LogLevel:   sentryLevels(cfg.MinLevel),    // Logs stored for context/search
	}.NewSentryHandler(context.Background())

	return NewWithHandler(fanout{stdoutHandler, sentryHandler}, extractors...), nil
}

// sentryLevels lists the levels at or above minLevel that are forwarded as Sentry logs.
func sentryLevels(minLevel slog.Level) []slog.Level {
	var levels []slog.Level
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= minLevel {
			levels = append(levels, l)
		}
	}
	return levels
}

// SentryFlush returns a shutdown hook that drains buffered Sentry events.
// It is a no-op when Sentry was never initialized.
func SentryFlush(timeout time.Duration) func(context.Context) error {
	return func(ctx context.Context) error {
		if deadline, ok := ctx.Deadline(); ok {
			if left := time.Until(deadline); left < timeout {
				timeout = left
			}
		}
		sentry.Flush(timeout)
		return nil
	}
}
