package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.WriteHeader(http.StatusNotAcceptable)
	rw.WriteHeader(http.StatusOK)

	require.Equal(t, http.StatusNotAcceptable, rw.Status())
	require.Equal(t, http.StatusNotAcceptable, w.Code)
	require.True(t, rw.Written())
}

func TestResponseWriter_Write(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	n, err := rw.Write([]byte("hallo"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, err = rw.Write([]byte(" welt"))
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, rw.Status())
	require.Equal(t, int64(10), rw.Size())
	require.Equal(t, "hallo welt", w.Body.String())
}

func TestResponseWriter_Hooks(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	var calls []string
	rw.OnBeforeWrite(func() {
		calls = append(calls, "first")
		rw.Header().Set("Content-Language", "de")
	})
	rw.OnBeforeWrite(func() { calls = append(calls, "second") })

	_, err := rw.Write([]byte("x"))
	require.NoError(t, err)
	_, err = rw.Write([]byte("y"))
	require.NoError(t, err)

	require.Equal(t, []string{"first", "second"}, calls)
	require.Equal(t, "de", w.Header().Get("Content-Language"))
}

func TestResponseWriter_ReusesWrapper(t *testing.T) {
	t.Parallel()

	rw := NewResponseWriter(httptest.NewRecorder())
	require.Same(t, rw, NewResponseWriter(rw))
	require.NotNil(t, rw.Unwrap())
}

func TestResponseWriter_Flush(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)
	rw.Flush()
	require.True(t, w.Flushed)
}

func TestResponseWriter_Detach(t *testing.T) {
	t.Parallel()

	t.Run("writes through until closed", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		rw := NewResponseWriter(w)
		rw.Header().Set("X-Request-ID", "rid")

		detached := rw.Detach()
		detached.Header().Set("Content-Language", "de")
		require.Empty(t, w.Header().Get("Content-Language"), "headers are buffered until the first write")

		_, err := detached.Write([]byte("hallo"))
		require.NoError(t, err)
		require.True(t, rw.Written())
		require.Equal(t, "hallo", w.Body.String())
		require.Equal(t, "rid", w.Header().Get("X-Request-ID"))
		require.Equal(t, "de", w.Header().Get("Content-Language"))

		detached.Close()
		_, err = detached.Write([]byte(" welt"))
		require.ErrorIs(t, err, http.ErrHandlerTimeout)
		require.Equal(t, "hallo", w.Body.String())
	})

	t.Run("closed writer leaves the response to the caller", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		rw := NewResponseWriter(w)

		detached := rw.Detach()
		detached.Close()
		detached.Header().Set("X-Late", "1")
		detached.WriteHeader(http.StatusOK)
		_, err := detached.Write([]byte("late"))
		require.ErrorIs(t, err, http.ErrHandlerTimeout)
		require.False(t, rw.Written())

		rw.WriteHeader(http.StatusGatewayTimeout)
		require.Equal(t, http.StatusGatewayTimeout, w.Code)
		require.Empty(t, w.Body.String())
		require.Empty(t, w.Header().Get("X-Late"))
	})

	t.Run("reattach moves headers and hooks to the parent", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		rw := NewResponseWriter(w)

		detached := rw.Detach()
		detached.Header().Set("Vary", "Cookie")
		detached.OnBeforeWrite(func() { detached.Header().Set("Content-Language", "fr") })
		detached.Reattach()

		rw.WriteHeader(http.StatusNotAcceptable)
		require.Equal(t, http.StatusNotAcceptable, w.Code)
		require.Equal(t, "Cookie", w.Header().Get("Vary"))
		require.Equal(t, "fr", w.Header().Get("Content-Language"))
	})
}
