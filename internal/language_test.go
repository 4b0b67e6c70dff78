package internal_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langneg/internal"
	"github.com/dmitrymomot/langneg/pkg/langcode"
	"github.com/dmitrymomot/langneg/pkg/negotiate"
)

// countingResolver records how often negotiation actually runs.
type countingResolver struct {
	err   error
	calls atomic.Int32
	lang  langcode.Code
}

func (r *countingResolver) ResolveResult(ctx context.Context, req *http.Request) (negotiate.Result, error) {
	r.calls.Add(1)
	if r.err != nil {
		return negotiate.Result{}, r.err
	}
	return negotiate.Result{Lang: r.lang, Source: negotiate.SourceCustom}, nil
}

func TestContextLanguage(t *testing.T) {
	t.Parallel()

	t.Run("default without negotiation", func(t *testing.T) {
		t.Parallel()

		fn := routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				lang, err := c.Language()
				require.NoError(t, err)
				return c.String(http.StatusOK, lang.String())
			})
		})

		w := serve(t, httptest.NewRequest(http.MethodGet, "/", nil), fn)
		require.Equal(t, internal.DefaultLanguage.String(), w.Body.String())
	})

	t.Run("url segment from negotiate config", func(t *testing.T) {
		t.Parallel()

		cfg := negotiate.MustNew(negotiate.WithURLSegment(0), negotiate.ReportFirstFailure())
		fn := routes(func(r internal.Router) {
			r.GET("/{lang}/hello", func(c internal.Context) error {
				lang, err := c.Language()
				if err != nil {
					return internal.LanguageError(err)
				}
				return c.String(http.StatusOK, lang.NativeName())
			})
		})

		w := serve(t, httptest.NewRequest(http.MethodGet, "/de/hello", nil), fn, internal.WithLanguage(cfg))
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "Deutsch", w.Body.String())

		w = serve(t, httptest.NewRequest(http.MethodGet, "/xx/hello", nil), fn, internal.WithLanguage(cfg))
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("not acceptable maps to 406", func(t *testing.T) {
		t.Parallel()

		cfg := negotiate.MustNew(negotiate.WithWeight(langcode.En, 1))
		fn := routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				if _, err := c.Language(); err != nil {
					return internal.LanguageError(err)
				}
				return c.NoContent(http.StatusOK)
			})
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "de")
		w := serve(t, req, fn, internal.WithLanguage(cfg))
		require.Equal(t, http.StatusNotAcceptable, w.Code)
	})

	t.Run("resolved once per request", func(t *testing.T) {
		t.Parallel()

		resolver := &countingResolver{lang: langcode.Uk}
		peek := func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				lang, err := c.Language()
				require.NoError(t, err)
				require.Equal(t, langcode.Uk, lang)
				return next(c)
			}
		}

		fn := routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				var wg sync.WaitGroup
				for range 8 {
					wg.Go(func() {
						_, _ = c.Language()
					})
				}
				wg.Wait()

				res, ok, err := internal.ResolveLanguage(c)
				require.True(t, ok)
				require.NoError(t, err)
				require.Equal(t, negotiate.SourceCustom, res.Source)
				return c.NoContent(http.StatusOK)
			}, peek)
		})

		serve(t, httptest.NewRequest(http.MethodGet, "/", nil), fn,
			internal.WithLanguage(resolver),
			internal.WithMiddleware(peek),
		)
		require.Equal(t, int32(1), resolver.calls.Load())
	})

	t.Run("lazy until asked", func(t *testing.T) {
		t.Parallel()

		resolver := &countingResolver{lang: langcode.Fr}
		fn := routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error { return c.NoContent(http.StatusOK) })
		})

		serve(t, httptest.NewRequest(http.MethodGet, "/", nil), fn, internal.WithLanguage(resolver))
		require.Zero(t, resolver.calls.Load())
	})

	t.Run("failure is memoized too", func(t *testing.T) {
		t.Parallel()

		resolver := &countingResolver{err: negotiate.ErrNotAcceptable}
		fn := routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				_, err := c.Language()
				require.ErrorIs(t, err, negotiate.ErrNotAcceptable)
				_, err = c.Language()
				require.ErrorIs(t, err, negotiate.ErrNotAcceptable)
				return c.NoContent(http.StatusOK)
			})
		})

		serve(t, httptest.NewRequest(http.MethodGet, "/", nil), fn, internal.WithLanguage(resolver))
		require.Equal(t, int32(1), resolver.calls.Load())
	})
}

func TestAttachLanguageKeepsExistingState(t *testing.T) {
	t.Parallel()

	first := &countingResolver{lang: langcode.Es}
	second := &countingResolver{lang: langcode.It}

	fn := routes(func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			internal.AttachLanguage(c, second)
			lang, err := c.Language()
			require.NoError(t, err)
			return c.String(http.StatusOK, lang.String())
		})
	})

	w := serve(t, httptest.NewRequest(http.MethodGet, "/", nil), fn, internal.WithLanguage(first))
	require.Equal(t, "es", w.Body.String())
	require.Zero(t, second.calls.Load())
}

func TestPeekLanguage(t *testing.T) {
	t.Parallel()

	_, ok := internal.PeekLanguage(context.Background())
	require.False(t, ok)

	resolver := &countingResolver{lang: langcode.Ja}
	fn := routes(func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			_, ok := internal.PeekLanguage(c)
			require.False(t, ok)

			_, err := c.Language()
			require.NoError(t, err)

			lang, ok := internal.PeekLanguage(c)
			require.True(t, ok)
			require.Equal(t, langcode.Ja, lang)
			return c.NoContent(http.StatusOK)
		})
	})

	serve(t, httptest.NewRequest(http.MethodGet, "/", nil), fn, internal.WithLanguage(resolver))
	require.Equal(t, int32(1), resolver.calls.Load())
}
