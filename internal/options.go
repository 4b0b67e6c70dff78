package internal

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/langneg/pkg/cookie"
	"github.com/dmitrymomot/langneg/pkg/logger"
)

// Option configures the application.
type Option func(*App)

// WithLanguage enables lazy language negotiation for every request.
// Handlers read the outcome with c.Language(); the resolver runs at most once per request.
// Pass a *negotiate.Config or any other LanguageResolver.
//
// Example:
//
//	langneg.New(
//	    langneg.WithLanguage(negotiate.MustNew(
//	        negotiate.WithURLSegment(0),
//	        negotiate.WithWeight(langcode.En, 1),
//	    )),
//	)
func WithLanguage(resolver LanguageResolver) Option {
	return func(a *App) {
		if resolver != nil {
			a.language = resolver
		}
	}
}

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithMount attaches a plain http.Handler under pattern, outside the Context pipeline's handlers
// but behind the global middleware.
//
// Example:
//
//	langneg.WithMount("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
func WithMount(pattern string, h http.Handler) Option {
	return func(a *App) {
		if pattern != "" && h != nil {
			a.mounts = append(a.mounts, mount{handler: h, pattern: pattern})
		}
	}
}

// WithErrorHandler sets a custom error handler for handler errors.
// Called when a handler returns a non-nil error.
//
// Example:
//
//	langneg.WithErrorHandler(func(c langneg.Context, err error) error {
//	    httpErr := langneg.LanguageError(err)
//	    return c.JSON(httpErr.Code, map[string]string{"error": httpErr.ErrorCode})
//	})
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables health check endpoints with optional configuration.
// Liveness (/health/live): Always returns OK if process is running.
// Readiness (/health/ready): Runs all configured checks.
//
// Example:
//
//	langneg.WithHealthChecks(
//	    langneg.WithReadinessCheck("db", db.Healthcheck(pool)),
//	    langneg.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger creates a logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
// Extractors pull values from context (e.g., request_id, language).
//
// Example:
//
//	langneg.New(
//	    langneg.WithLogger("api", middlewares.RequestIDExtractor(), middlewares.LanguageExtractor()),
//	)
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(extractors...).With("component", component)
	}
}

// WithCustomLogger sets a fully custom logger.
// Use this when you need complete control over logging configuration.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithCookieOptions configures the cookie manager.
// A secret enables signed cookies, which the language cookie can use.
//
// Example:
//
//	langneg.New(
//	    langneg.WithCookieOptions(
//	        cookie.WithSecret(os.Getenv("COOKIE_SECRET")),
//	        cookie.WithSecure(true),
//	    ),
//	)
func WithCookieOptions(opts ...cookie.Option) Option {
	return func(a *App) {
		a.cookieManager = cookie.New(opts...)
	}
}
