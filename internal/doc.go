// Package internal provides the core types and implementation behind the langneg package.
//
// This package is internal and should not be used directly. Import "github.com/dmitrymomot/langneg"
// instead, which re-exports the public API.
//
// # Core Types
//
//   - App: Orchestrates HTTP routing, middleware, health endpoints and graceful shutdown
//   - Context: Request/response access plus the request's negotiated language
//   - Router: Interface handlers use to declare routes with HTTP methods and grouping
//   - Handler: Interface implemented by types that declare routes on a router
//   - HandlerFunc: Signature for individual route handlers that return errors
//   - Middleware: Wraps handlers to add cross-cutting concerns
//   - ErrorHandler: Custom error handling function for handler errors
//   - LanguageResolver: Runs negotiation for a request; *negotiate.Config implements it
//
// # Language Negotiation
//
// WithLanguage installs per-request negotiation state before any middleware runs.
// Nothing is computed until somebody asks:
//
//	func (h *Pages) hello(c internal.Context) error {
//	    lang, err := c.Language()
//	    if err != nil {
//	        return internal.LanguageError(err)
//	    }
//	    return c.String(http.StatusOK, h.greetings[lang])
//	}
//
// The first call runs the resolver chain; later calls on the same request, from any
// middleware, handler or goroutine, reuse that outcome. LanguageError maps a failure to
// 400, 404 or 406 for the error handler.
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to any function
// that expects a standard library context. The Deadline, Done, Err, and Value
// methods delegate to the underlying request context. SetContext swaps that
// context, which the Timeout middleware uses to bound the resolver chain.
//
// # Server Lifecycle
//
// App.Run listens on the given address, runs startup hooks first and shutdown
// hooks after the server has drained:
//
//	err := app.Run(":8080",
//	    internal.Logger(log),
//	    internal.StartupHook(migrate),
//	    internal.ShutdownHook(redis.Shutdown(client)),
//	)
package internal
