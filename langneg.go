package langneg

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dmitrymomot/langneg/internal"
	"github.com/dmitrymomot/langneg/pkg/cookie"
	"github.com/dmitrymomot/langneg/pkg/health"
	"github.com/dmitrymomot/langneg/pkg/langcode"
	"github.com/dmitrymomot/langneg/pkg/logger"
	"github.com/dmitrymomot/langneg/pkg/negotiate"
)

type (
	// App owns the router, middleware chain and server lifecycle.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context is the per-request handle. Context.Language returns the negotiated language.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	HandlerFunc  = internal.HandlerFunc
	Middleware   = internal.Middleware
	ErrorHandler = internal.ErrorHandler
	Option       = internal.Option
	RunOption    = internal.RunOption
	HealthOption = internal.HealthOption

	// LanguageResolver is satisfied by *negotiate.Config.
	LanguageResolver = internal.LanguageResolver

	// HTTPError carries a status code and a stable error code to the error handler.
	HTTPError = internal.HTTPError

	HTTPErrorOption  = internal.HTTPErrorOption
	ResponseWriter   = internal.ResponseWriter
	ContextExtractor = logger.ContextExtractor
	CookieOption     = cookie.Option
)

// DefaultLanguage is what Context.Language returns when no negotiation is configured.
const DefaultLanguage = internal.DefaultLanguage

// LangPattern is the route segment Router.Localized prepends.
const LangPattern = internal.LangPattern

// New creates an application. The App is immutable after creation.
//
//	app := langneg.New(
//	    langneg.WithLanguage(negotiate.MustNew(
//	        negotiate.WithURLSegment(0),
//	        negotiate.WithWildcard(langcode.En),
//	    )),
//	    langneg.WithHandlers(pages),
//	)
//	err := app.Run(":8080")
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// WithLanguage negotiates the request language lazily with resolver.
func WithLanguage(resolver LanguageResolver) Option {
	return internal.WithLanguage(resolver)
}

// WithMiddleware adds global middleware; the first one runs first.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithMount serves a plain http.Handler under pattern, e.g. promhttp.Handler() at /metrics.
func WithMount(pattern string, h http.Handler) Option {
	return internal.WithMount(pattern, h)
}

func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks enables /health/live and /health/ready.
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// WithReadinessTimeout bounds each readiness check.
func WithReadinessTimeout(d time.Duration) HealthOption {
	return internal.WithReadinessTimeout(d)
}

// WithLogger creates a JSON logger tagged with component.
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// WithCookieOptions configures the cookie manager behind Context.Cookie and Context.CookieSigned.
func WithCookieOptions(opts ...CookieOption) Option {
	return internal.WithCookieOptions(opts...)
}

// Run options

func Address(addr string) RunOption {
	return internal.Address(addr)
}

func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// ShutdownHook runs fn after the server stops accepting requests.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// StartupHook runs fn before the server listens; an error aborts Run.
func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// Listener serves on an already open listener instead of Address.
func Listener(ln net.Listener) RunOption {
	return internal.Listener(ln)
}

// Language helpers

// ResolveLanguage returns the full negotiation result for the request.
// ok is false when no negotiation is attached.
func ResolveLanguage(c Context) (res negotiate.Result, ok bool, err error) {
	return internal.ResolveLanguage(c)
}

// PeekLanguage returns the negotiated language without triggering negotiation.
func PeekLanguage(ctx context.Context) (langcode.Code, bool) {
	return internal.PeekLanguage(ctx)
}

// Errors

func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

func WithErrorCode(code string) HTTPErrorOption {
	return internal.WithErrorCode(code)
}

func WithRequestID(id string) HTTPErrorOption {
	return internal.WithRequestID(id)
}

func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotFound(message, opts...)
}

func ErrNotAcceptable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotAcceptable(message, opts...)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

// LanguageError maps a negotiation error to an HTTPError:
// NotFound 404, NotAcceptable 406, BadRequest 400 and anything else 500.
func LanguageError(err error, opts ...HTTPErrorOption) *HTTPError {
	return internal.LanguageError(err, opts...)
}

// LanguageStatus is the HTTP status LanguageError would use for err.
func LanguageStatus(err error) int {
	return internal.LanguageStatus(err)
}

func IsHTTPError(err error) bool {
	return internal.IsHTTPError(err)
}

func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// Typed parameters

func Param[T ~string | ~int | ~int64 | ~float64 | ~bool](c Context, name string) T {
	return internal.Param[T](c, name)
}

func Query[T ~string | ~int | ~int64 | ~float64 | ~bool](c Context, name string) T {
	return internal.Query[T](c, name)
}

func QueryDefault[T ~string | ~int | ~int64 | ~float64 | ~bool](c Context, name string, fallback T) T {
	return internal.QueryDefault(c, name, fallback)
}

func ContextValue[T any](c Context, key any) T {
	return internal.ContextValue[T](c, key)
}
