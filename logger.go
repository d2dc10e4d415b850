package cugraph

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cugraph-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NopLogger returns a logger that discards all output.
func NopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(nopWriter{}, &slog.HandlerOptions{
			Level: slog.Level(127),
		})),
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

// DebugContext logs at debug level with context, tolerating a nil
// receiver so call sites never need to guard.
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	if l == nil || l.Logger == nil {
		return
	}
	l.Logger.DebugContext(ctx, msg, args...)
}
