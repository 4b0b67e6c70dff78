package negotiate_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langneg/pkg/langcode"
	"github.com/dmitrymomot/langneg/pkg/negotiate"
)

func TestSources(t *testing.T) {
	t.Parallel()

	resolver := negotiate.Sources(
		negotiate.FromQuery("lang"),
		negotiate.FromCookie("lang"),
		negotiate.FromHeader("X-Language"),
	)

	t.Run("query wins", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/?lang=de", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "fr"})
		lang, err := resolver.ResolveLanguage(context.Background(), r)
		require.NoError(t, err)
		require.Equal(t, langcode.De, lang)
	})

	t.Run("invalid value falls through", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/?lang=klingon", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "fr"})
		lang, err := resolver.ResolveLanguage(context.Background(), r)
		require.NoError(t, err)
		require.Equal(t, langcode.Fr, lang)
	})

	t.Run("regional tag is reduced", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Language", "pt-BR")
		lang, err := resolver.ResolveLanguage(context.Background(), r)
		require.NoError(t, err)
		require.Equal(t, langcode.Pt, lang)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := resolver.ResolveLanguage(context.Background(), r)
		require.ErrorIs(t, err, negotiate.ErrNotFound)
	})
}

func TestSourcesAsCustomResolver(t *testing.T) {
	t.Parallel()

	cfg := negotiate.MustNew(
		negotiate.WithResolver(negotiate.Sources(negotiate.FromQuery("lang"))),
		negotiate.WithWeight(langcode.En, 1),
	)

	lang, err := cfg.Resolve(context.Background(), httptest.NewRequest(http.MethodGet, "/?lang=es", nil))
	require.NoError(t, err)
	require.Equal(t, langcode.Es, lang)

	lang, err = cfg.Resolve(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, langcode.En, lang)
}

func TestFromURLParam(t *testing.T) {
	t.Parallel()

	cfg := negotiate.MustNew(negotiate.WithResolver(negotiate.Sources(negotiate.FromURLParam("lang"))))

	router := chi.NewRouter()
	router.Get("/{lang}/hello", func(w http.ResponseWriter, r *http.Request) {
		lang, err := cfg.Resolve(r.Context(), r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(lang.String()))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uk/hello", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "uk", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/xx/hello", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFirstOf(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)

	fixed := func(lang langcode.Code, err error) negotiate.Resolver {
		return negotiate.ResolverFunc(func(*http.Request) (langcode.Code, error) { return lang, err })
	}
	boom := errors.New("store down")

	lang, err := negotiate.FirstOf(
		fixed(0, negotiate.ErrNotFound),
		fixed(0, boom),
		negotiate.Sources(negotiate.FromQuery("lang")),
		fixed(langcode.De, nil),
	).ResolveLanguage(ctx, req)
	require.NoError(t, err)
	require.Equal(t, langcode.Fr, lang)

	_, err = negotiate.FirstOf(fixed(0, boom), fixed(0, negotiate.ErrNotFound)).ResolveLanguage(ctx, req)
	require.ErrorIs(t, err, negotiate.ErrNotFound)

	_, err = negotiate.FirstOf(fixed(0, negotiate.ErrNotFound), fixed(0, boom)).ResolveLanguage(ctx, req)
	require.ErrorIs(t, err, boom)

	_, err = negotiate.FirstOf(fixed(langcode.Code(0), nil)).ResolveLanguage(ctx, req)
	require.ErrorIs(t, err, negotiate.ErrInvalidCode)

	_, err = negotiate.FirstOf().ResolveLanguage(ctx, req)
	require.ErrorIs(t, err, negotiate.ErrNotFound)
}

func TestDeferToPath(t *testing.T) {
	t.Parallel()

	lookup := negotiate.DeferToPath(0, negotiate.FromCookie("lang"))

	r := httptest.NewRequest(http.MethodGet, "/de/hello", nil)
	r.AddCookie(&http.Cookie{Name: "lang", Value: "uk"})
	_, ok := lookup(r)
	require.False(t, ok, "language segment silences the cookie")

	r = httptest.NewRequest(http.MethodGet, "/hello", nil)
	r.AddCookie(&http.Cookie{Name: "lang", Value: "uk"})
	v, ok := lookup(r)
	require.True(t, ok)
	require.Equal(t, "uk", v)
}
