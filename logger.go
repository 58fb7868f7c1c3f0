package defectgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with defectgo-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithAtomCount adds an atom count field to the logger.
func (l *Logger) WithAtomCount(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("atoms", n),
	}
}

// WithMode adds an evaluation mode field to the logger.
func (l *Logger) WithMode(mode string) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", mode),
	}
}

// LogValidate logs the outcome of input validation.
func (l *Logger) LogValidate(ctx context.Context, atoms int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "input validation failed",
			"atoms", atoms,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "input validated",
			"atoms", atoms,
		)
	}
}

// LogClassify logs a classification pass.
func (l *Logger) LogClassify(ctx context.Context, atoms int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "classification failed",
			"atoms", atoms,
			"duration", duration,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "classification completed",
			"atoms", atoms,
			"duration", duration,
		)
	}
}
