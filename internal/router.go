package internal

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// Router is the interface handlers use to declare routes.
// It provides HTTP method routing and grouping capabilities.
type Router interface {
	// GET registers a handler for GET requests.
	GET(path string, h HandlerFunc, mw ...Middleware)

	// POST registers a handler for POST requests.
	POST(path string, h HandlerFunc, mw ...Middleware)

	// PUT registers a handler for PUT requests.
	PUT(path string, h HandlerFunc, mw ...Middleware)

	// PATCH registers a handler for PATCH requests.
	PATCH(path string, h HandlerFunc, mw ...Middleware)

	// DELETE registers a handler for DELETE requests.
	DELETE(path string, h HandlerFunc, mw ...Middleware)

	// HEAD registers a handler for HEAD requests.
	HEAD(path string, h HandlerFunc, mw ...Middleware)

	// OPTIONS registers a handler for OPTIONS requests.
	OPTIONS(path string, h HandlerFunc, mw ...Middleware)

	// Group creates an inline route group.
	// All routes defined inside fn share no common pattern prefix.
	Group(fn func(r Router))

	// Route creates a route group with a pattern prefix.
	// All routes defined inside fn share the pattern prefix.
	Route(pattern string, fn func(r Router))

	// Use appends middleware to the router's middleware stack.
	Use(mw ...Middleware)

	// Mount attaches an http.Handler at the given pattern.
	// Use this for legacy handlers or third-party routers.
	Mount(pattern string, h http.Handler)

	// Localized registers the routes declared in fn twice: as given and under
	// a leading language segment, so "/hello" also answers "/de/hello".
	// The segment is available as the "lang" URL param and pairs with
	// negotiate.WithURLSegment(0) or negotiate.FromURLParam("lang").
	Localized(fn func(r Router))
}

// LangPattern is the chi pattern of the language segment added by Localized.
const LangPattern = "/{lang:[a-z]{2,3}}"

// routerAdapter wraps chi.Router to implement the Router interface.
// prefix is prepended to every pattern registered through it.
type routerAdapter struct {
	router chi.Router
	app    *App
	prefix string
}

func (r *routerAdapter) GET(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodGet, path, h, mw)
}

func (r *routerAdapter) POST(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodPost, path, h, mw)
}

func (r *routerAdapter) PUT(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodPut, path, h, mw)
}

func (r *routerAdapter) PATCH(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodPatch, path, h, mw)
}

func (r *routerAdapter) DELETE(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodDelete, path, h, mw)
}

func (r *routerAdapter) HEAD(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodHead, path, h, mw)
}

func (r *routerAdapter) OPTIONS(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodOptions, path, h, mw)
}

func (r *routerAdapter) handle(method, path string, h HandlerFunc, mw []Middleware) {
	r.router.Method(method, r.pattern(path), r.wrap(h, mw...))
}

// pattern joins the adapter prefix and path; "/" under a prefix is the prefix itself.
func (r *routerAdapter) pattern(path string) string {
	if r.prefix == "" {
		return path
	}
	if path == "" || path == "/" {
		return r.prefix
	}
	return r.prefix + path
}

func (r *routerAdapter) Group(fn func(Router)) {
	r.router.Group(func(cr chi.Router) {
		fn(r.child(cr, r.prefix))
	})
}

func (r *routerAdapter) Route(pattern string, fn func(Router)) {
	r.router.Route(r.pattern(pattern), func(cr chi.Router) {
		fn(r.child(cr, ""))
	})
}

func (r *routerAdapter) Localized(fn func(Router)) {
	r.Group(fn)
	r.router.Group(func(cr chi.Router) {
		fn(r.child(cr, r.prefix+LangPattern))
	})
}

func (r *routerAdapter) child(cr chi.Router, prefix string) *routerAdapter {
	return &routerAdapter{router: cr, app: r.app, prefix: prefix}
}

func (r *routerAdapter) Use(mw ...Middleware) {
	for _, m := range mw {
		r.router.Use(r.app.adaptMiddleware(m))
	}
}

func (r *routerAdapter) Mount(pattern string, h http.Handler) {
	r.router.Mount(r.pattern(pattern), h)
}

func (r *routerAdapter) wrap(h HandlerFunc, mw ...Middleware) http.HandlerFunc {
	// Wrap in reverse so the first registered middleware runs first.
	for _, m := range slices.Backward(mw) {
		h = m(h)
	}
	return r.adaptHandler(h)
}

func (r *routerAdapter) adaptHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		c := newContext(w, req, r.app)
		if err := h(c); err != nil {
			r.app.handleError(c, err)
		}
	}
}

// adaptMiddleware converts a Middleware to chi middleware.
// The request handed to the next handler is taken from the Context after the
// middleware ran, so values stored with Set (negotiation state, request ID)
// travel down the chain.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Create a HandlerFunc that calls the next http.Handler
			nextFunc := func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			}
			// Apply the middleware
			wrapped := mw(nextFunc)
			// Execute with a new context
			c := newContext(w, r, a)
			if err := wrapped(c); err != nil {
				a.handleError(c, err)
			}
		})
	}
}
