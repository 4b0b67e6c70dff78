package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects level and output format. Loaded from the environment with pkg/config.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// New creates a JSON logger on stdout at info level with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	log, _ := NewWithConfig(Config{}, os.Stdout, extractors...)
	return log
}

// NewWithConfig creates a logger writing to w as configured.
// Empty fields fall back to info level and JSON output.
func NewWithConfig(cfg Config, w io.Writer, extractors ...ContextExtractor) (*slog.Logger, error) {
	h, err := newHandler(cfg, w)
	if err != nil {
		return nil, err
	}
	return NewWithHandler(h, extractors...), nil
}

// NewWithHandler decorates an existing handler with context extractors.
func NewWithHandler(h slog.Handler, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(Decorate(h, extractors...))
}

func newHandler(cfg Config, w io.Writer) (slog.Handler, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "", "json":
		return slog.NewJSONHandler(w, opts), nil
	case "text":
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}
}

// ParseLevel parses debug, info, warn or error (case-insensitive). Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	return level, nil
}
