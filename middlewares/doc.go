// Package middlewares provides HTTP middleware for langneg applications.
//
// # Language
//
// Language attaches a negotiate.Config (or any internal.LanguageResolver) to each request.
// Negotiation is lazy: it runs on the first c.Language() call and is memoized for the
// rest of the request. When a language was negotiated, Content-Language is set on the
// response before the first write.
//
//	cfg := negotiate.MustNew(
//	    negotiate.WithResolver(negotiate.Sources(negotiate.DeferToPath(0, negotiate.FromCookie("lang")))),
//	    negotiate.WithURLSegment(0),
//	    negotiate.WithWeights(map[langcode.Code]float64{langcode.En: 1, langcode.De: 0.8}),
//	    negotiate.WithWildcard(langcode.En),
//	)
//
//	app := langneg.New(
//	    langneg.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Language(cfg, middlewares.WithLanguageCookie("lang", 86400*365)),
//	    ),
//	)
//
// WithLanguageRequired negotiates before the handler runs and rejects the request with
// the mapped status (404, 406, 400 or 500) when negotiation fails. FromSignedCookie reads
// a cookie written by WithLanguageSignedCookie as a custom resolution step. The cookie
// only stores URL and custom results, so an Accept-Language guess never becomes sticky.
//
// # Request ID
//
// RequestID assigns a unique ID to each request, reusing the incoming X-Request-ID when
// it is short enough. RequestIDExtractor and LanguageExtractor add request_id and
// language to every log record:
//
//	app := langneg.New(
//	    langneg.WithLogger("api", middlewares.RequestIDExtractor(), middlewares.LanguageExtractor()),
//	)
//
// # Recover and Timeout
//
// Recover converts panics (including panics inside a synchronous language resolver)
// into *PanicError. Timeout bounds the request context, so an async resolver observes
// the deadline, and returns *TimeoutError when it passes.
//
// # Errors
//
// ErrorHandler renders every error as JSON with a stable error code:
//
//	{"error": "language_not_acceptable", "message": "...", "request_id": "..."}
//
// # Metrics
//
// NewMetrics registers Prometheus collectors for request counts, durations and
// negotiation outcomes. Register its Middleware after Language so it can see the
// negotiated result.
package middlewares
