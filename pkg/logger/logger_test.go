package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langneg/pkg/logger"
)

type tenantKey struct{}

func tenantExtractor(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(tenantKey{}).(string); ok {
		return slog.String("tenant", v), true
	}
	return slog.Attr{}, false
}

func TestNewWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("json with extractors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, err := logger.NewWithConfig(logger.Config{Level: "debug"}, &buf, tenantExtractor, nil)
		require.NoError(t, err)

		ctx := context.WithValue(context.Background(), tenantKey{}, "acme")
		log.With("component", "api").DebugContext(ctx, "negotiated", slog.String("language", "de"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "negotiated", entry["msg"])
		require.Equal(t, "acme", entry["tenant"])
		require.Equal(t, "api", entry["component"])
		require.Equal(t, "de", entry["language"])
	})

	t.Run("level filters", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, err := logger.NewWithConfig(logger.Config{Level: "WARN", Format: "text"}, &buf)
		require.NoError(t, err)

		log.Info("dropped")
		require.Empty(t, buf.String())
		log.Warn("kept")
		require.Contains(t, buf.String(), "msg=kept")
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()

		_, err := logger.NewWithConfig(logger.Config{Level: "loud"}, &bytes.Buffer{})
		require.ErrorIs(t, err, logger.ErrUnknownLevel)

		_, err = logger.NewWithConfig(logger.Config{Format: "xml"}, &bytes.Buffer{})
		require.ErrorIs(t, err, logger.ErrUnknownFormat)
	})
}

func TestGroupsKeepExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithHandler(slog.NewJSONHandler(&buf, nil), tenantExtractor)

	ctx := context.WithValue(context.Background(), tenantKey{}, "acme")
	log.WithGroup("req").InfoContext(ctx, "hello", slog.Int("n", 1))

	require.Contains(t, buf.String(), `"tenant":"acme"`)
}

func TestNewWithSentryWithoutDSN(t *testing.T) {
	t.Parallel()

	log, err := logger.NewWithSentry(logger.SentryConfig{}, logger.Config{})
	require.NoError(t, err)
	require.NotNil(t, log)

	_, err = logger.NewWithSentry(logger.SentryConfig{}, logger.Config{Format: "yaml"})
	require.ErrorIs(t, err, logger.ErrUnknownFormat)

	require.NoError(t, logger.SentryFlush(0)(context.Background()))
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestExtract(t *testing.T) {
	t.Parallel()

	type langKey struct{}
	lang := logger.Extract("language", func(ctx context.Context) (string, bool) {
		v, ok := ctx.Value(langKey{}).(string)
		return v, ok
	})

	var buf bytes.Buffer
	log := logger.NewWithHandler(slog.NewJSONHandler(&buf, nil), lang)

	t.Run("adds the value", func(t *testing.T) {
		buf.Reset()
		log.InfoContext(context.WithValue(context.Background(), langKey{}, "uk"), "hi")
		require.Contains(t, buf.String(), `"language":"uk"`)
	})

	t.Run("skips missing and zero values", func(t *testing.T) {
		buf.Reset()
		log.InfoContext(context.Background(), "hi")
		log.InfoContext(context.WithValue(context.Background(), langKey{}, ""), "hi")
		require.NotContains(t, buf.String(), "language")
	})

	t.Run("explicit attribute wins", func(t *testing.T) {
		buf.Reset()
		log.InfoContext(context.WithValue(context.Background(), langKey{}, "uk"), "hi", slog.String("language", "de"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		require.Equal(t, "de", rec["language"])
	})
}

func TestDecorateWithoutExtractors(t *testing.T) {
	t.Parallel()

	h := slog.NewJSONHandler(&bytes.Buffer{}, nil)
	require.Same(t, h, logger.Decorate(h, nil, nil))
}
