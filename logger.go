package simterms

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with simterms-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelWarn).
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

// WithVector adds a vector field to the logger.
func (l *Logger) WithVector(vector string) *Logger {
	return &Logger{
		Logger: l.Logger.With("vector", vector),
	}
}

// WithUnitSet adds a unit_set field to the logger.
func (l *Logger) WithUnitSet(unitSet string) *Logger {
	return &Logger{
		Logger: l.Logger.With("unit_set", unitSet),
	}
}

// LogDescriptionMiss logs the advisory warning for a vector name without a
// terminology entry. The lookup itself still succeeds with the raw name.
func (l *Logger) LogDescriptionMiss(vector string) {
	l.Warn("no description found for vector",
		"vector", vector,
	)
}

// LogLoad logs the outcome of a reference table load.
func (l *Logger) LogLoad(vectors, unitSets int, err error) {
	if err != nil {
		l.Error("terminology load failed",
			"error", err,
		)
	} else {
		l.Info("terminology loaded",
			"vectors", vectors,
			"unit_sets", unitSets,
		)
	}
}
