// Package logger builds log/slog loggers with context extraction and optional Sentry reporting.
//
// A ContextExtractor pulls one attribute out of the context on every log call, so
// request-scoped values such as the request ID or the negotiated language are added
// without threading them through call sites:
//
//	log := logger.New(middlewares.RequestIDExtractor(), middlewares.LanguageExtractor())
//	log.InfoContext(ctx, "greeting served")
//	// {"level":"INFO","msg":"greeting served","request_id":"...","language":"de"}
//
// Extract turns a typed context lookup into an extractor; an attribute passed
// explicitly at the call site takes precedence over the extracted one:
//
//	tenant := logger.Extract("tenant", func(ctx context.Context) (string, bool) {
//		return tenantFrom(ctx)
//	})
//
// Level and format come from Config, usually loaded from LOG_LEVEL and LOG_FORMAT:
//
//	log, err := logger.NewWithConfig(logger.Config{Level: "debug", Format: "text"}, os.Stderr)
//
// # Sentry
//
// NewWithSentry writes to stdout and forwards records at or above MinLevel to Sentry;
// errors additionally create Sentry issues. With an empty DSN it falls back to stdout only,
// so the same code path runs in development. Register SentryFlush as a shutdown hook to
// deliver buffered events before exit.
//
// NewNope returns a logger that discards everything, the default for App.
package logger
