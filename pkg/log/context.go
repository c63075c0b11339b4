package log

import (
	"context"
	"log/slog"
)

type contextKey string

const contextKeyAttrs contextKey = "attrs"

// WithAttrs attaches log attributes to the context. Handlers wrapped
// with ContextHandler will add them to every record logged with this
// context.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	existing := contextAttrs(ctx)
	merged := make([]slog.Attr, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)

	return context.WithValue(ctx, contextKeyAttrs, merged)
}

func contextAttrs(ctx context.Context) []slog.Attr {
	attrs, ok := ctx.Value(contextKeyAttrs).([]slog.Attr)
	if !ok {
		return nil
	}

	return attrs
}

type ContextHandler struct {
	slog.Handler
}

// Handle implements slog.Handler.
func (h ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs := contextAttrs(ctx); len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}

	return h.Handler.Handle(ctx, record)
}

var _ slog.Handler = ContextHandler{}
