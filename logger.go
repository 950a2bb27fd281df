package unbox

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with unbox-specific context.
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

// WithCategory adds a category field to the logger.
func (l *Logger) WithCategory(c Category) *Logger {
	return &Logger{
		Logger: l.Logger.With("category", c.String()),
	}
}

// WithHandle adds a handle field to the logger (useful for tagging one
// object among many).
func (l *Logger) WithHandle(handle uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("handle", handle),
	}
}

// LogResize logs a capacity change of one category.
func (l *Logger) LogResize(c Category, before, after int) {
	log := l.WithCategory(c)
	if after == before {
		log.Debug("resize kept capacity", "slots", before)
	} else {
		log.Debug("resized", "before", before, "after", after)
	}
}
