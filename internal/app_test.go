package internal_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langneg/internal"
	"github.com/dmitrymomot/langneg/pkg/negotiate"
)

// routes adapts a plain function to the Handler interface.
type routes func(r internal.Router)

func (fn routes) Routes(r internal.Router) { fn(r) }

// serve builds an App, sends a single request and returns the recorded response.
func serve(t *testing.T, req *http.Request, fn routes, opts ...internal.Option) *httptest.ResponseRecorder {
	t.Helper()

	opts = append(opts, internal.WithHandlers(fn))
	app := internal.New(opts...)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func TestAppRouting(t *testing.T) {
	t.Parallel()

	t.Run("methods and groups", func(t *testing.T) {
		t.Parallel()

		fn := routes(func(r internal.Router) {
			r.POST("/items", func(c internal.Context) error { return c.NoContent(http.StatusCreated) })
			r.Route("/api", func(r internal.Router) {
				r.GET("/ping", func(c internal.Context) error { return c.String(http.StatusOK, "pong") })
			})
			r.Group(func(r internal.Router) {
				r.DELETE("/items/{id}", func(c internal.Context) error {
					return c.String(http.StatusOK, c.Param("id"))
				})
			})
		})

		w := serve(t, httptest.NewRequest(http.MethodPost, "/items", nil), fn)
		require.Equal(t, http.StatusCreated, w.Code)

		w = serve(t, httptest.NewRequest(http.MethodGet, "/api/ping", nil), fn)
		require.Equal(t, "pong", w.Body.String())

		w = serve(t, httptest.NewRequest(http.MethodDelete, "/items/42", nil), fn)
		require.Equal(t, "42", w.Body.String())
	})

	t.Run("localized routes answer with and without a language segment", func(t *testing.T) {
		t.Parallel()

		fn := routes(func(r internal.Router) {
			r.Localized(func(r internal.Router) {
				r.GET("/", func(c internal.Context) error {
					return c.String(http.StatusOK, "home:"+c.Param("lang"))
				})
				r.GET("/hello", func(c internal.Context) error {
					return c.String(http.StatusOK, "hello:"+c.Param("lang"))
				})
			})
		})

		for target, want := range map[string]string{
			"/":          "home:",
			"/de":        "home:de",
			"/hello":     "hello:",
			"/fil/hello": "hello:fil",
		} {
			w := serve(t, httptest.NewRequest(http.MethodGet, target, nil), fn)
			require.Equal(t, http.StatusOK, w.Code, target)
			require.Equal(t, want, w.Body.String(), target)
		}

		w := serve(t, httptest.NewRequest(http.MethodGet, "/english/hello", nil), fn)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("route middleware runs in registration order", func(t *testing.T) {
		t.Parallel()

		var order []string
		mark := func(name string) internal.Middleware {
			return func(next internal.HandlerFunc) internal.HandlerFunc {
				return func(c internal.Context) error {
					order = append(order, name)
					return next(c)
				}
			}
		}

		fn := routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				order = append(order, "handler")
				return c.NoContent(http.StatusOK)
			}, mark("first"), mark("second"))
		})

		serve(t, httptest.NewRequest(http.MethodGet, "/", nil), fn, internal.WithMiddleware(mark("global")))
		require.Equal(t, []string{"global", "first", "second", "handler"}, order)
	})

	t.Run("global middleware values reach the handler", func(t *testing.T) {
		t.Parallel()

		type key struct{}
		set := func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				c.Set(key{}, "v")
				return next(c)
			}
		}

		fn := routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				return c.String(http.StatusOK, internal.ContextValue[string](c, key{}))
			})
		})

		w := serve(t, httptest.NewRequest(http.MethodGet, "/", nil), fn, internal.WithMiddleware(set))
		require.Equal(t, "v", w.Body.String())
	})
}

func TestAppErrorHandling(t *testing.T) {
	t.Parallel()

	failing := routes(func(r internal.Router) {
		r.GET("/http", func(c internal.Context) error {
			return c.Error(http.StatusNotAcceptable, "no language")
		})
		r.GET("/plain", func(c internal.Context) error {
			return errors.New("boom")
		})
		r.GET("/negotiation", func(c internal.Context) error {
			return fmt.Errorf("url: %w", negotiate.ErrNotFound)
		})
		r.GET("/written", func(c internal.Context) error {
			_ = c.String(http.StatusAccepted, "partial")
			return errors.New("late failure")
		})
	})

	t.Run("default handler uses HTTPError status", func(t *testing.T) {
		t.Parallel()

		w := serve(t, httptest.NewRequest(http.MethodGet, "/http", nil), failing)
		require.Equal(t, http.StatusNotAcceptable, w.Code)

		w = serve(t, httptest.NewRequest(http.MethodGet, "/plain", nil), failing)
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("default handler maps negotiation failures", func(t *testing.T) {
		t.Parallel()

		w := serve(t, httptest.NewRequest(http.MethodGet, "/negotiation", nil), failing)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("written response is left alone", func(t *testing.T) {
		t.Parallel()

		w := serve(t, httptest.NewRequest(http.MethodGet, "/written", nil), failing)
		require.Equal(t, http.StatusAccepted, w.Code)
		require.Equal(t, "partial", w.Body.String())
	})

	t.Run("custom error handler", func(t *testing.T) {
		t.Parallel()

		handler := internal.WithErrorHandler(func(c internal.Context, err error) error {
			return c.JSON(http.StatusTeapot, map[string]string{"error": err.Error()})
		})

		w := serve(t, httptest.NewRequest(http.MethodGet, "/plain", nil), failing, handler)
		require.Equal(t, http.StatusTeapot, w.Code)
		require.JSONEq(t, `{"error":"boom"}`, w.Body.String())
	})

	t.Run("not found and method not allowed", func(t *testing.T) {
		t.Parallel()

		opts := []internal.Option{
			internal.WithNotFoundHandler(func(c internal.Context) error {
				return c.String(http.StatusNotFound, "missing")
			}),
			internal.WithMethodNotAllowedHandler(func(c internal.Context) error {
				return c.String(http.StatusMethodNotAllowed, "wrong method")
			}),
		}

		w := serve(t, httptest.NewRequest(http.MethodGet, "/nope", nil), failing, opts...)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "missing", w.Body.String())

		w = serve(t, httptest.NewRequest(http.MethodPost, "/plain", nil), failing, opts...)
		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
		require.Equal(t, "wrong method", w.Body.String())
	})
}

func TestAppMountAndHealth(t *testing.T) {
	t.Parallel()

	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("metrics"))
	})

	app := internal.New(
		internal.WithMount("/metrics", metrics),
		internal.WithHealthChecks(
			internal.WithReadinessPath("/ready"),
			internal.WithReadinessCheck("store", func(ctx context.Context) error {
				return errors.New("down")
			}),
		),
	)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, "metrics", w.Body.String())

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/p/de?q=1&flag=true", nil)
	req.Header.Set("X-Test", "yes")
	req.AddCookie(&http.Cookie{Name: "lang", Value: "fr"})

	fn := routes(func(r internal.Router) {
		r.GET("/p/{lang}", func(c internal.Context) error {
			require.Equal(t, "de", c.Param("lang"))
			require.Equal(t, "1", c.Query("q"))
			require.Equal(t, "fallback", c.QueryDefault("missing", "fallback"))
			require.Equal(t, 1, internal.Query[int](c, "q"))
			require.True(t, internal.QueryDefault(c, "flag", false))
			require.Equal(t, 7, internal.QueryDefault(c, "missing", 7))
			require.Equal(t, "de", internal.Param[string](c, "lang"))
			require.Equal(t, "yes", c.Header("X-Test"))

			v, err := c.Cookie("lang")
			require.NoError(t, err)
			require.Equal(t, "fr", v)

			require.NotNil(t, c.Logger())
			c.LogDebug("handling", "lang", c.Param("lang"))

			c.SetCookie("seen", "1", 60)
			c.SetHeader("Content-Language", "de")
			require.False(t, c.Written())
			err = c.JSON(http.StatusOK, map[string]int{"n": 1})
			require.True(t, c.Written())
			require.Equal(t, http.StatusOK, c.ResponseWriter().Status())
			return err
		})
	})

	w := serve(t, req, fn)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "de", w.Header().Get("Content-Language"))
	require.Contains(t, w.Header().Get("Set-Cookie"), "seen=1")
	require.JSONEq(t, `{"n":1}`, w.Body.String())
}

func TestContextSetContext(t *testing.T) {
	t.Parallel()

	fn := routes(func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			_, ok := c.Deadline()
			require.False(t, ok)

			ctx, cancel := context.WithTimeout(c.Context(), time.Minute)
			defer cancel()
			c.SetContext(ctx)

			_, ok = c.Deadline()
			require.True(t, ok)
			require.NoError(t, c.Err())
			return c.Redirect(http.StatusFound, "/elsewhere")
		})
	})

	w := serve(t, httptest.NewRequest(http.MethodGet, "/", nil), fn)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/elsewhere", w.Header().Get("Location"))
}

func TestContextVary(t *testing.T) {
	t.Parallel()

	fn := routes(func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			c.Response().Header().Set("Vary", "Origin, accept-language")
			c.Vary("Accept-Language", "cookie")
			c.Vary("Cookie")
			return c.NoContent(http.StatusOK)
		})
	})

	w := serve(t, httptest.NewRequest(http.MethodGet, "/", nil), fn)
	require.Equal(t, []string{"Origin, accept-language", "Cookie"}, w.Header().Values("Vary"))
}
