package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/dmitrymomot/langneg/internal"
	"github.com/dmitrymomot/langneg/pkg/cookie"
	"github.com/dmitrymomot/langneg/pkg/langcode"
	"github.com/dmitrymomot/langneg/pkg/logger"
	"github.com/dmitrymomot/langneg/pkg/negotiate"
)

// LanguageConfig configures the Language middleware.
type LanguageConfig struct {
	Observer        func(c internal.Context, res negotiate.Result, err error)
	CookieName      string
	CookieSources   []negotiate.Source
	CookieMaxAge    int
	CookieSigned    bool
	Required        bool
	ContentLanguage bool
}

// LanguageOption configures LanguageConfig.
type LanguageOption func(*LanguageConfig)

// WithLanguageRequired negotiates before the handler runs and rejects the request
// with the mapped HTTPError (400, 404, 406 or 500) when negotiation fails.
func WithLanguageRequired() LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.Required = true
	}
}

// WithLanguageCookie stores the negotiated language in a plain cookie.
// Pair it with negotiate.FromCookie(name) as the custom resolver to make the choice sticky,
// wrapped in negotiate.DeferToPath when the URL carries a language segment.
// Only explicit choices are stored, see WithLanguageCookieSources.
func WithLanguageCookie(name string, maxAge int) LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.CookieName = name
		cfg.CookieMaxAge = maxAge
		cfg.CookieSigned = false
	}
}

// WithLanguageSignedCookie is WithLanguageCookie with an HMAC-signed value.
// Requires a cookie secret; read it back with FromSignedCookie.
func WithLanguageSignedCookie(name string, maxAge int) LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.CookieName = name
		cfg.CookieMaxAge = maxAge
		cfg.CookieSigned = true
	}
}

// WithLanguageCookieSources sets which negotiation steps may write the language cookie.
// The default is negotiate.SourceURL and negotiate.SourceCustom. Header and wildcard
// results are never stored: they are guesses, and a stored guess would shadow later
// explicit choices.
func WithLanguageCookieSources(sources ...negotiate.Source) LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.CookieSources = slices.DeleteFunc(slices.Clone(sources), func(s negotiate.Source) bool {
			return s == negotiate.SourceHeader || s == negotiate.SourceWildcard
		})
	}
}

// WithoutContentLanguage disables the Content-Language response header.
func WithoutContentLanguage() LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.ContentLanguage = false
	}
}

// WithLanguageObserver registers a callback invoked once the response is about to be
// written, if negotiation ran during the request.
func WithLanguageObserver(fn func(c internal.Context, res negotiate.Result, err error)) LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.Observer = fn
	}
}

// Language returns middleware that attaches lazy language negotiation to each request.
//
// Handlers read the language with c.Language() or GetLanguage. Before the first byte
// of the response is written the middleware sets Content-Language, persists the
// cookie if configured and notifies the observer, all without forcing negotiation
// on requests that never asked for a language.
func Language(resolver internal.LanguageResolver, opts ...LanguageOption) internal.Middleware {
	cfg := &LanguageConfig{
		ContentLanguage: true,
		CookieSources:   []negotiate.Source{negotiate.SourceURL, negotiate.SourceCustom},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			internal.AttachLanguage(c, resolver)

			c.ResponseWriter().OnBeforeWrite(func() {
				res, ran, err := internal.PeekLanguageResult(c)
				if !ran {
					return
				}
				if cfg.Observer != nil {
					cfg.Observer(c, res, err)
				}
				if err != nil {
					if kind, ok := negotiate.AsError(err); ok && kind == negotiate.ErrNotAcceptable {
						c.Vary("Accept-Language")
					}
					return
				}
				if cfg.ContentLanguage {
					c.SetHeader("Content-Language", res.Lang.String())
				}
				if res.Source == negotiate.SourceHeader || res.Source == negotiate.SourceWildcard {
					c.Vary("Accept-Language")
				}
				if cfg.CookieName != "" {
					c.Vary("Cookie")
					if slices.Contains(cfg.CookieSources, res.Source) {
						persistLanguage(c, cfg, res.Lang)
					}
				}
			})

			if cfg.Required {
				if _, err := c.Language(); err != nil {
					c.LogDebug("language negotiation failed", slog.Any("error", err))
					return internal.LanguageError(err, internal.WithRequestID(GetRequestID(c)))
				}
			}

			return next(c)
		}
	}
}

func persistLanguage(c internal.Context, cfg *LanguageConfig, lang langcode.Code) {
	if !cfg.CookieSigned {
		if current, err := c.Cookie(cfg.CookieName); err == nil && current == lang.String() {
			return
		}
		c.SetCookie(cfg.CookieName, lang.String(), cfg.CookieMaxAge)
		return
	}

	if current, err := c.CookieSigned(cfg.CookieName); err == nil && current == lang.String() {
		return
	}
	if err := c.SetCookieSigned(cfg.CookieName, lang.String(), cfg.CookieMaxAge); err != nil {
		c.LogWarn("failed to persist language cookie", slog.Any("error", err))
	}
}

// FromSignedCookie returns a negotiate.Lookup reading a cookie written with
// WithLanguageSignedCookie. Tampered or unsigned values are ignored.
func FromSignedCookie(m *cookie.Manager, name string) negotiate.Lookup {
	return func(r *http.Request) (string, bool) {
		v, err := m.GetSigned(r, name)
		if err != nil || v == "" {
			return "", false
		}
		return v, true
	}
}

// GetLanguage returns the negotiated language of the request, negotiating on first use.
// Without negotiation state it returns internal.DefaultLanguage.
func GetLanguage(c internal.Context) (langcode.Code, error) {
	return c.Language()
}

// LanguageExtractor returns a ContextExtractor for use with WithLogger.
// Adds "language" to log entries once negotiation has succeeded; it never triggers negotiation.
func LanguageExtractor() logger.ContextExtractor {
	return logger.Extract("language", func(ctx context.Context) (string, bool) {
		lang, ok := internal.PeekLanguage(ctx)
		return lang.String(), ok
	})
}
