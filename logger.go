package delaycache

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with delaycache-specific context.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithPolicy adds a policy field to the logger.
func (l *Logger) WithPolicy(p Policy) *Logger {
	return &Logger{
		Logger: l.Logger.With("policy", p.String()),
	}
}

// WithKey adds a key field to the logger.
func (l *Logger) WithKey(key uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", key),
	}
}

// WithCapacity adds a capacity field to the logger.
func (l *Logger) WithCapacity(capacity uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}
