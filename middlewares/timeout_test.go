package middlewares_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langneg/internal"
	"github.com/dmitrymomot/langneg/middlewares"
	"github.com/dmitrymomot/langneg/pkg/langcode"
	"github.com/dmitrymomot/langneg/pkg/negotiate"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("passes through when handler completes in time", func(t *testing.T) {
		t.Parallel()

		w := handle(t, get("/"), "/", func(c internal.Context) error {
			_, ok := c.Deadline()
			require.True(t, ok)
			return c.NoContent(http.StatusNoContent)
		}, internal.WithMiddleware(middlewares.Timeout(time.Second)))
		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("returns TimeoutError when handler exceeds timeout", func(t *testing.T) {
		t.Parallel()

		var got error
		w := handle(t, get("/"), "/", func(c internal.Context) error {
			<-c.Done()
			time.Sleep(20 * time.Millisecond)
			return nil
		},
			internal.WithMiddleware(middlewares.Timeout(10*time.Millisecond)),
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				got = err
				return c.NoContent(http.StatusGatewayTimeout)
			}),
		)
		require.Equal(t, http.StatusGatewayTimeout, w.Code)

		te, ok := middlewares.AsTimeoutError(got)
		require.True(t, ok)
		require.Equal(t, 10*time.Millisecond, te.Duration)
	})

	t.Run("late writes after the deadline are dropped", func(t *testing.T) {
		t.Parallel()

		late := make(chan error, 1)
		w := handle(t, get("/"), "/", func(c internal.Context) error {
			<-c.Done()
			time.Sleep(20 * time.Millisecond)
			c.SetHeader("X-Late", "1")
			late <- c.String(http.StatusOK, "late")
			return nil
		},
			internal.WithMiddleware(middlewares.Timeout(10*time.Millisecond)),
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				return c.String(http.StatusGatewayTimeout, "timeout")
			}),
		)
		require.Equal(t, http.StatusGatewayTimeout, w.Code)
		require.Equal(t, "timeout", w.Body.String())
		require.Empty(t, w.Header().Get("X-Late"))

		select {
		case err := <-late:
			require.ErrorIs(t, err, http.ErrHandlerTimeout)
		case <-time.After(time.Second):
			t.Fatal("handler did not finish")
		}
	})

	t.Run("headers set before an error survive", func(t *testing.T) {
		t.Parallel()

		w := handle(t, get("/"), "/", func(c internal.Context) error {
			c.SetHeader("X-Trace", "abc")
			return errors.New("boom")
		},
			internal.WithMiddleware(middlewares.Timeout(time.Second)),
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				return c.NoContent(http.StatusInternalServerError)
			}),
		)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, "abc", w.Header().Get("X-Trace"))
	})

	t.Run("deadline reaches the language resolver", func(t *testing.T) {
		t.Parallel()

		slow := negotiate.AsyncResolverFunc(func(ctx context.Context, r *http.Request) (langcode.Code, error) {
			time.Sleep(time.Second)
			return langcode.De, nil
		})
		cfg := negotiate.MustNew(negotiate.WithResolver(slow), negotiate.WithWildcard(langcode.En))

		errCh := make(chan error, 1)
		handle(t, get("/"), "/", func(c internal.Context) error {
			_, err := c.Language()
			errCh <- err
			return nil
		},
			internal.WithLanguage(cfg),
			internal.WithMiddleware(middlewares.Timeout(20*time.Millisecond)),
		)

		select {
		case err := <-errCh:
			require.ErrorIs(t, err, context.DeadlineExceeded)
		case <-time.After(time.Second):
			t.Fatal("resolver did not observe the deadline")
		}
	})

	t.Run("uses default timeout when zero provided", func(t *testing.T) {
		t.Parallel()

		w := handle(t, get("/"), "/", func(c internal.Context) error {
			deadline, ok := c.Deadline()
			require.True(t, ok)
			require.WithinDuration(t, time.Now().Add(middlewares.DefaultTimeout), deadline, 5*time.Second)
			return c.NoContent(http.StatusOK)
		}, internal.WithMiddleware(middlewares.Timeout(0)))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("skip bypasses the deadline", func(t *testing.T) {
		t.Parallel()

		w := handle(t, get("/metrics"), "/metrics", func(c internal.Context) error {
			_, ok := c.Deadline()
			require.False(t, ok)
			return c.NoContent(http.StatusOK)
		}, internal.WithMiddleware(middlewares.Timeout(time.Second, middlewares.WithTimeoutSkip(func(c internal.Context) bool {
			return c.Request().URL.Path == "/metrics"
		}))))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("propagates handler error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		var got error
		handle(t, get("/"), "/", func(c internal.Context) error { return boom },
			internal.WithMiddleware(middlewares.Timeout(time.Second)),
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				got = err
				return c.NoContent(http.StatusInternalServerError)
			}),
		)
		require.ErrorIs(t, got, boom)
	})
}
