package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a context.
// Returning false skips the attribute for that record.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// StringExtractor adapts a context getter to a ContextExtractor.
// Empty values are skipped.
//
//	logger.StringExtractor("request_id", server.RequestID)
func StringExtractor(key string, get func(ctx context.Context) string) ContextExtractor {
	if get == nil {
		return nil
	}
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := get(ctx); v != "" {
			return slog.String(key, v), true
		}
		return slog.Attr{}, false
	}
}

// LogHandlerDecorator runs context extractors on every record before passing
// it to the wrapped handler, so request-scoped values stay current.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewLogHandlerDecorator wraps next. Nil extractors are dropped.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &LogHandlerDecorator{next: next, extractors: clean}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandlerDecorator{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{next: h.next.WithGroup(name), extractors: h.extractors}
}
