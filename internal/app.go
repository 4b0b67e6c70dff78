package internal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/langneg/pkg/cookie"
	"github.com/dmitrymomot/langneg/pkg/logger"
)

// Default server timeouts (hardcoded, opinionated).
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

// App orchestrates the application lifecycle.
// It manages HTTP routing, middleware, language negotiation and graceful shutdown.
// App is immutable after creation - all configuration is done via New().
type App struct {
	router                  chi.Router
	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc
	healthConfig            *healthConfig
	logger                  *slog.Logger
	cookieManager           *cookie.Manager
	language                LanguageResolver
	middlewares             []Middleware
	handlers                []Handler
	mounts                  []mount
}

// mount is an http.Handler attached under a pattern, e.g. a metrics endpoint.
type mount struct {
	handler http.Handler
	pattern string
}

// New creates a new application with the given options.
// The App is immutable after creation.
//
// Example:
//
//	app := langneg.New(
//	    langneg.WithLanguage(negotiate.MustNew(negotiate.WithURLSegment(0))),
//	    langneg.WithHandlers(handlers.NewPages()),
//	)
func New(opts ...Option) *App {
	a := &App{
		router:        chi.NewRouter(),
		logger:        logger.NewNope(), // Default: noop logger (before options)
		cookieManager: cookie.New(),     // Default: cookie manager (no secret)
	}

	for _, opt := range opts {
		opt(a)
	}

	a.setupRoutes()
	return a
}

// Router returns the underlying chi.Router for the App.
func (a *App) Router() chi.Router {
	return a.router
}

// ServeHTTP lets the App be used directly as an http.Handler,
// e.g. with httptest or behind another server.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Run starts the HTTP server and blocks until shutdown.
//
// Example:
//
//	err := app.Run(":8080", langneg.Logger(log), langneg.ShutdownHook(redis.Shutdown(client)))
func (a *App) Run(addr string, opts ...RunOption) error {
	cfg := buildRunConfig(opts...)
	if addr != "" {
		cfg.address = addr
	}
	cfg.negotiates = a.language != nil

	return newServer(a.router, cfg).run()
}

// setupRoutes configures the router with middleware and handlers.
func (a *App) setupRoutes() {
	// Set custom error handlers on chi router
	if a.notFoundHandler != nil {
		a.router.NotFound(a.wrapHandler(a.notFoundHandler))
	}
	if a.methodNotAllowedHandler != nil {
		a.router.MethodNotAllowed(a.wrapHandler(a.methodNotAllowedHandler))
	}

	// Negotiation state goes first so every middleware can ask for the language.
	if a.language != nil {
		a.router.Use(a.adaptMiddleware(attachLanguage(a.language)))
	}

	// Apply global middleware
	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	for _, m := range a.mounts {
		a.router.Mount(m.pattern, m.handler)
	}

	if a.healthConfig != nil {
		a.healthConfig.mount(a.router, a.logger)
	}

	// Register handlers
	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// attachLanguage installs lazy negotiation for every request.
func attachLanguage(resolver LanguageResolver) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			AttachLanguage(c, resolver)
			return next(c)
		}
	}
}

// wrapHandler converts a HandlerFunc to http.HandlerFunc using the app's error handler.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// handleError handles errors from handlers using the configured error handler.
func (a *App) handleError(c Context, err error) {
	// Check if response has already been written
	if c.Written() {
		return
	}
	if a.errorHandler != nil {
		if herr := a.errorHandler(c, err); herr != nil {
			a.logger.ErrorContext(c.Context(), "error handler failed", slog.Any("error", herr))
		}
		return
	}
	defaultErrorHandler(c, err)
}

// defaultErrorHandler answers with the status of an HTTPError or a negotiation
// failure (404, 406, 400), 500 otherwise, as plain text. Server errors are logged.
func defaultErrorHandler(c Context, err error) {
	code := LanguageError(err).Code
	if code <= 0 {
		code = http.StatusInternalServerError
	}
	if code >= http.StatusInternalServerError {
		c.LogError("request failed", slog.Any("error", err))
	}
	http.Error(c.Response(), http.StatusText(code), code)
}
