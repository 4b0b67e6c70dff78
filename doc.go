// Package langneg picks the language of each HTTP request.
//
// A negotiate.Config describes where the language may come from, in order:
// a custom resolver (a stored user preference, a query parameter, a cookie),
// a URL path segment, the Accept-Language header weighed against the server's
// support levels, and finally a wildcard default. The App attaches that config
// to every request and negotiates lazily, once, the first time a handler asks:
//
//	cfg := negotiate.MustNew(
//	    negotiate.WithURLSegment(0),
//	    negotiate.WithWeights(map[langcode.Code]float64{
//	        langcode.En: 1.0,
//	        langcode.De: 0.8,
//	    }),
//	    negotiate.WithWildcard(langcode.En),
//	)
//
//	app := langneg.New(
//	    langneg.WithLanguage(cfg),
//	    langneg.WithErrorHandler(middlewares.ErrorHandler()),
//	    langneg.WithHandlers(pages),
//	)
//
//	func (p *Pages) home(c langneg.Context) error {
//	    lang, err := c.Language()
//	    if err != nil {
//	        return langneg.LanguageError(err) // 404, 406, 400 or 500
//	    }
//	    return c.String(http.StatusOK, greetings[lang])
//	}
//
// Without WithLanguage (or the middlewares.Language middleware), Context.Language
// returns DefaultLanguage.
//
// # Handlers and middleware
//
// Handlers implement Handler and declare their routes on a Router. Middleware
// wraps HandlerFunc; the first registered runs outermost. Router.Localized
// serves a group both bare and under a language segment, which pairs with
// negotiate.WithURLSegment(0):
//
//	r.Localized(func(r langneg.Router) {
//	    r.GET("/", p.home) // "/" and "/de"
//	})
//
// # Lifecycle
//
// App.Run blocks until SIGINT/SIGTERM or until the WithContext context ends,
// then drains connections and runs shutdown hooks:
//
//	err := app.Run(":8080",
//	    langneg.StartupHook(func(ctx context.Context) error {
//	        return prefstore.Migrate(ctx, pool, "langneg_migrations", log)
//	    }),
//	    langneg.ShutdownHook(db.Shutdown(pool)),
//	)
//
// # Escape hatch
//
// App.Router returns the underlying chi.Router, and WithMount serves any
// http.Handler, such as a Prometheus exporter.
package langneg
