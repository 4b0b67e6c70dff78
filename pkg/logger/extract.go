package logger

import (
	"context"
	"log/slog"
	"slices"
)

// ContextExtractor pulls one request-scoped attribute out of ctx.
// It reports false when ctx carries nothing to log.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// Extract builds a ContextExtractor logging fn's value under key.
// Zero values are skipped.
func Extract[T comparable](key string, fn func(ctx context.Context) (T, bool)) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		v, ok := fn(ctx)
		var zero T
		if !ok || v == zero {
			return slog.Attr{}, false
		}
		return slog.Any(key, v), true
	}
}

// Decorate wraps next so every record gets the attributes the extractors find
// in the logging context. Extraction happens per record, after the level check.
// An attribute already present on the record wins over an extracted one.
func Decorate(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	extractors = slices.DeleteFunc(slices.Clone(extractors), func(ex ContextExtractor) bool {
		return ex == nil
	})
	if len(extractors) == 0 {
		return next
	}
	return &extractHandler{next: next, extractors: extractors}
}

type extractHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

func (h *extractHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *extractHandler) Handle(ctx context.Context, rec slog.Record) error {
	var present []string
	rec.Attrs(func(a slog.Attr) bool {
		present = append(present, a.Key)
		return true
	})

	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if ok && !slices.Contains(present, attr.Key) {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *extractHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &extractHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *extractHandler) WithGroup(name string) slog.Handler {
	return &extractHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
