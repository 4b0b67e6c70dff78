package negotiate

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/langneg/pkg/langcode"
)

// Lookup extracts a raw language value from a request.
// Returns ("", false) when the value is not present.
type Lookup func(r *http.Request) (string, bool)

// FromQuery reads a query parameter, e.g. ?lang=de.
func FromQuery(name string) Lookup {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromHeader reads a request header, e.g. X-Language.
func FromHeader(name string) Lookup {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		return v, v != ""
	}
}

// FromCookie reads a plain cookie value.
func FromCookie(name string) Lookup {
	return func(r *http.Request) (string, bool) {
		cookie, err := r.Cookie(name)
		if err != nil || cookie.Value == "" {
			return "", false
		}
		return cookie.Value, true
	}
}

// FromURLParam reads a chi route parameter such as {lang}.
// Route parameters are only populated for handlers and route-level middleware.
func FromURLParam(name string) Lookup {
	return func(r *http.Request) (string, bool) {
		v := chi.URLParam(r, name)
		return v, v != ""
	}
}

// DeferToPath wraps l so it yields nothing while the path segment at position
// names a known language. A remembered choice, such as a cookie read in the custom
// step, then never outranks a language given explicitly in the URL.
func DeferToPath(position int, l Lookup) Lookup {
	return func(r *http.Request) (string, bool) {
		if _, err := FromPath(r.URL.Path, position); err == nil {
			return "", false
		}
		return l(r)
	}
}

// Sources returns a Resolver that tries lookups in order and answers the first value
// naming a known language. Values such as "pt-BR" are reduced to their base language;
// values that name no known language are skipped. If no lookup yields a language,
// the resolver fails with ErrNotFound.
func Sources(lookups ...Lookup) Resolver {
	return ResolverFunc(func(r *http.Request) (langcode.Code, error) {
		for _, lookup := range lookups {
			v, ok := lookup(r)
			if !ok {
				continue
			}
			if lang, ok := parseLoose(v); ok {
				return lang, nil
			}
		}
		return 0, ErrNotFound
	})
}

func parseLoose(v string) (langcode.Code, bool) {
	if lang, err := langcode.Parse(v); err == nil {
		return lang, true
	}
	tag, err := language.Parse(v)
	if err != nil {
		return 0, false
	}
	lang, err := langcode.FromTag(tag)
	if err != nil {
		return 0, false
	}
	return lang, true
}

// FirstOf combines resolvers into one custom step. They run in order and the first
// success wins. When all fail, the last error is returned; with no resolvers, ErrNotFound.
func FirstOf(resolvers ...Resolver) Resolver {
	return AsyncResolverFunc(func(ctx context.Context, r *http.Request) (langcode.Code, error) {
		var err error = ErrNotFound
		for _, res := range resolvers {
			var lang langcode.Code
			if lang, err = res.ResolveLanguage(ctx, r); err == nil && lang.IsValid() {
				return lang, nil
			}
			if err == nil {
				err = fmt.Errorf("%w: resolver returned %d", ErrInvalidCode, lang)
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return 0, ctxErr
			}
		}
		return 0, err
	})
}
