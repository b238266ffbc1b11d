package log

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithContext stores logger in ctx for code that only receives a context.
func WithContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts the logger stored by WithContext, falling back to the
// slog default tagged with component.
func FromContext(ctx context.Context, component string) *Logger {
	if logger, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return logger.WithComponent(component)
	}
	return &Logger{
		Logger:    slog.Default(),
		component: component,
	}
}
