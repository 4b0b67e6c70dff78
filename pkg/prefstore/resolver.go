package prefstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/langneg/pkg/langcode"
	"github.com/dmitrymomot/langneg/pkg/negotiate"
)

// SubjectFunc identifies whose preference applies to a request.
type SubjectFunc func(r *http.Request) (string, bool)

// SubjectFromHeader reads the subject from a request header, e.g. X-User-ID.
func SubjectFromHeader(name string) SubjectFunc {
	return func(r *http.Request) (string, bool) {
		v := strings.TrimSpace(r.Header.Get(name))
		return v, v != ""
	}
}

// SubjectFromCookie reads the subject from a plain cookie.
func SubjectFromCookie(name string) SubjectFunc {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// Resolver is a custom negotiation step that looks up the subject's stored preference.
// It runs asynchronously, so a slow store is abandoned when the request context ends.
//
// A request without a subject and a subject without a preference both report
// negotiate.ErrNotFound; other store errors fail the step.
func Resolver(store Store, subject SubjectFunc) negotiate.Resolver {
	return negotiate.AsyncResolverFunc(func(ctx context.Context, r *http.Request) (langcode.Code, error) {
		id, ok := subject(r)
		if !ok {
			return 0, negotiate.ErrNotFound
		}

		lang, err := store.Get(ctx, id)
		switch {
		case err == nil:
			return lang, nil
		case errors.Is(err, ErrNotFound):
			return 0, negotiate.ErrNotFound
		default:
			return 0, fmt.Errorf("language preference for %q: %w", id, err)
		}
	})
}
