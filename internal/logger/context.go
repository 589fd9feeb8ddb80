package logger

import (
	"context"

	"github.com/google/uuid"
)

type correlationIDKey struct{}

// NewCorrelationID returns a fresh identifier for one command or user action.
func NewCorrelationID() string {
	return uuid.NewString()
}

// WithCorrelationID stores id in ctx so loggers derived with ForContext carry it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the identifier stored in ctx, or "" when there is none.
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// ForContext returns l enriched with the correlation ID found in ctx.
func (l *Logger) ForContext(ctx context.Context) *Logger {
	if l == nil {
		return nil
	}
	id := CorrelationID(ctx)
	if id == "" {
		return l
	}
	return l.With("correlation_id", id)
}
