package internal

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/langneg/pkg/cookie"
	"github.com/dmitrymomot/langneg/pkg/langcode"
)

// Context is the per-request handle passed to handlers and middleware.
// It implements context.Context by delegating to the request context.
type Context interface {
	context.Context
	RequestReader
	Responder
	RequestLogger
	CookieJar

	// Context returns the request's context.Context.
	Context() context.Context

	// SetContext replaces the request's context, e.g. with a deadline-bound one.
	SetContext(ctx context.Context)

	// Set stores a value in the request context.
	// The value can be read back with Get or c.Context().Value(key).
	Set(key any, value any)

	// Get returns the value stored under key, or nil.
	Get(key any) any

	// Language returns the negotiated language of the request.
	// Negotiation runs on first use and the outcome is reused for the rest of the request.
	// Without the Language middleware it returns DefaultLanguage.
	Language() (langcode.Code, error)
}

// RequestReader reads the incoming request.
type RequestReader interface {
	Request() *http.Request

	// Param returns the URL parameter value by name, or "".
	Param(name string) string

	// Query returns the query parameter value by name, or "".
	Query(name string) string

	// QueryDefault returns the query parameter value or defaultValue when empty.
	QueryDefault(name, defaultValue string) string

	// Header returns the request header value by name.
	Header(name string) string
}

// Responder writes the response.
type Responder interface {
	Response() http.ResponseWriter

	// ResponseWriter returns the wrapped writer for status and size inspection.
	ResponseWriter() *ResponseWriter

	SetHeader(name, value string)

	// Vary adds header names to the Vary response header, skipping ones already listed.
	// Negotiated responses vary on whatever the language came from.
	Vary(fields ...string)

	JSON(code int, v any) error
	String(code int, s string) error
	NoContent(code int) error
	Redirect(code int, url string) error

	// Error builds an HTTPError without writing anything.
	// Return it from the handler to reach the error handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Written reports whether the status line has been sent.
	Written() bool
}

// RequestLogger logs with the request context, so extractors can add
// request-scoped attributes such as the request ID and language.
type RequestLogger interface {
	Logger() *slog.Logger
	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)
}

// CookieJar reads and writes cookies through the App's cookie.Manager.
type CookieJar interface {
	Cookie(name string) (string, error)
	SetCookie(name, value string, maxAge int)
	DeleteCookie(name string)

	// CookieSigned and SetCookieSigned return cookie.ErrNoSecret without a configured secret.
	CookieSigned(name string) (string, error)
	SetCookieSigned(name, value string, maxAge int) error
}

type requestContext struct {
	request *http.Request
	rw      *ResponseWriter
	logger  *slog.Logger
	cookies *cookie.Manager
}

func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	return &requestContext{
		request: r,
		rw:      NewResponseWriter(w),
		logger:  app.logger,
		cookies: app.cookieManager,
	}
}

// context.Context

func (c *requestContext) Deadline() (time.Time, bool) { return c.request.Context().Deadline() }
func (c *requestContext) Done() <-chan struct{} { return c.request.Context().Done() }
func (c *requestContext) Err() error { return c.request.Context().Err() }
func (c *requestContext) Value(key any) any { return c.request.Context().Value(key) }

func (c *requestContext) Context() context.Context { return c.request.Context() }

func (c *requestContext) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}

// Detach returns a copy of c for running the rest of the chain on another goroutine.
// The copy has its own request and a detached writer (see ResponseWriter.Detach);
// release closes that writer, after which the copy can no longer touch the response.
// Contexts of other implementations are returned as is with a no-op release.
func Detach(c Context) (Context, func()) {
	rc, ok := c.(*requestContext)
	if !ok {
		return c, func() {}
	}
	cp := *rc
	cp.rw = rc.rw.Detach()
	return &cp, cp.rw.Close
}

func (c *requestContext) Set(key, value any) {
	c.SetContext(context.WithValue(c.request.Context(), key, value))
}

func (c *requestContext) Get(key any) any { return c.Value(key) }

// request

func (c *requestContext) Request() *http.Request { return c.request }
func (c *requestContext) Param(name string) string { return chi.URLParam(c.request, name) }
func (c *requestContext) Query(name string) string { return c.request.URL.Query().Get(name) }
func (c *requestContext) Header(name string) string { return c.request.Header.Get(name) }

func (c *requestContext) QueryDefault(name, defaultValue string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return defaultValue
}

// response

func (c *requestContext) Response() http.ResponseWriter { return c.rw }
func (c *requestContext) ResponseWriter() *ResponseWriter { return c.rw }
func (c *requestContext) Written() bool { return c.rw.Written() }
func (c *requestContext) SetHeader(name, value string) { c.rw.Header().Set(name, value) }

func (c *requestContext) Vary(fields ...string) {
	h := c.rw.Header()
	var have []string
	for _, v := range h.Values("Vary") {
		for f := range strings.SplitSeq(v, ",") {
			have = append(have, http.CanonicalHeaderKey(strings.TrimSpace(f)))
		}
	}
	for _, f := range fields {
		f = http.CanonicalHeaderKey(f)
		if !slices.Contains(have, f) {
			h.Add("Vary", f)
			have = append(have, f)
		}
	}
}

func (c *requestContext) JSON(code int, v any) error {
	c.SetHeader("Content-Type", "application/json; charset=utf-8")
	c.rw.WriteHeader(code)
	return json.NewEncoder(c.rw).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.SetHeader("Content-Type", "text/plain; charset=utf-8")
	c.rw.WriteHeader(code)
	_, err := c.rw.Write([]byte(s))
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.rw.WriteHeader(code)
	return nil
}

func (c *requestContext) Redirect(code int, url string) error {
	http.Redirect(c.rw, c.request, url, code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	err := NewHTTPError(code, message)
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// logging

func (c *requestContext) Logger() *slog.Logger { return c.logger }

func (c *requestContext) LogDebug(msg string, attrs ...any) { c.log(slog.LevelDebug, msg, attrs) }
func (c *requestContext) LogInfo(msg string, attrs ...any) { c.log(slog.LevelInfo, msg, attrs) }
func (c *requestContext) LogWarn(msg string, attrs ...any) { c.log(slog.LevelWarn, msg, attrs) }
func (c *requestContext) LogError(msg string, attrs ...any) { c.log(slog.LevelError, msg, attrs) }

func (c *requestContext) log(level slog.Level, msg string, attrs []any) {
	c.logger.Log(c.request.Context(), level, msg, attrs...)
}

// cookies

func (c *requestContext) Cookie(name string) (string, error) {
	return c.cookies.Get(c.request, name)
}

func (c *requestContext) SetCookie(name, value string, maxAge int) {
	c.cookies.Set(c.rw, name, value, maxAge)
}

func (c *requestContext) DeleteCookie(name string) {
	c.cookies.Delete(c.rw, name)
}

func (c *requestContext) CookieSigned(name string) (string, error) {
	return c.cookies.GetSigned(c.request, name)
}

func (c *requestContext) SetCookieSigned(name, value string, maxAge int) error {
	return c.cookies.SetSigned(c.rw, name, value, maxAge)
}

// language

func (c *requestContext) Language() (langcode.Code, error) {
	state, ok := c.Get(languageKey{}).(*languageState)
	if !ok {
		return DefaultLanguage, nil
	}
	res, err := state.resolve(c.request.Context(), c.request)
	return res.Lang, err
}
