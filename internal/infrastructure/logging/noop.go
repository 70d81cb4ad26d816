package logging

import (
	"context"

	"github.com/alexisbeaulieu97/navshell/internal/ports"
)

// NoOpLogger is the fallback for components built without a logger, such as
// a session or settings controller created in tests.
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(context.Context, string, ...interface{}) {}
func (n *NoOpLogger) Info(context.Context, string, ...interface{}) {}
func (n *NoOpLogger) Warn(context.Context, string, ...interface{}) {}
func (n *NoOpLogger) Error(context.Context, string, ...interface{}) {}
func (n *NoOpLogger) With(...interface{}) ports.Logger { return n }

// NewNoOpLogger returns a logger that drops every entry.
func NewNoOpLogger() ports.Logger {
	return &NoOpLogger{}
}
