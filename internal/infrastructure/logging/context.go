package logging

import (
	"context"

	"github.com/alexisbeaulieu97/navshell/internal/ports"
)

// WithCorrelationID tags ctx with id. Every entry logged through ctx by a
// navshell command or shell session carries it as correlation_id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return ports.WithCorrelationID(ctx, id)
}

// EnsureCorrelationID returns ctx unchanged when it already carries an ID and
// a copy tagged with a fresh one otherwise, along with the ID in effect.
func EnsureCorrelationID(ctx context.Context) (context.Context, string) {
	if ctx == nil {
		ctx = context.Background()
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		return ctx, id
	}
	id := GenerateCorrelationID()
	return ports.WithCorrelationID(ctx, id), id
}

// GenerateCorrelationID returns a fresh UUIDv4 string.
func GenerateCorrelationID() string {
	return ports.GenerateCorrelationID()
}
