package vectormap

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vectormap-specific context.
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
// This is the default for every map.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDelta adds the growth delta field to the logger.
func (l *Logger) WithDelta(delta int) *Logger {
	return &Logger{
		Logger: l.Logger.With("delta", delta),
	}
}

// LogResize logs a buffer reallocation.
func (l *Logger) LogResize(oldCapacity, newCapacity, size int) {
	switch {
	case newCapacity > oldCapacity:
		l.Debug("buffer grown",
			"old_capacity", oldCapacity,
			"new_capacity", newCapacity,
			"size", size,
		)
	case newCapacity < oldCapacity:
		l.Debug("buffer shrunk",
			"old_capacity", oldCapacity,
			"new_capacity", newCapacity,
			"size", size,
		)
	default:
		l.Debug("buffer reallocated",
			"capacity", newCapacity,
			"size", size,
		)
	}
}

// LogReserveRejected logs a capacity request below the current size.
func (l *Logger) LogReserveRejected(requested, size int) {
	l.Warn("capacity request rejected",
		"requested", requested,
		"size", size,
	)
}

// LogAllocationFailed logs a buffer allocation refused by the memory budget.
func (l *Logger) LogAllocationFailed(capacity int, bytes int64, err error) {
	l.Error("buffer allocation failed",
		"capacity", capacity,
		"bytes", bytes,
		"error", err,
	)
}
