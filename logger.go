package sparseset

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sparse set specific context.
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

// WithName adds a set name field to the logger (useful when several sets
// share one handler).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("set", name),
	}
}

func (l *Logger) debugEnabled() bool {
	return l.Enabled(context.Background(), slog.LevelDebug)
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(e Entity, pos int, err error) {
	if err != nil {
		l.Error("insert failed",
			"entity", uint32(e),
			"error", err,
		)
		return
	}
	if l.debugEnabled() {
		l.Debug("insert completed",
			"entity", uint32(e),
			"position", pos,
		)
	}
}

// LogRemove logs a remove operation. moved is the entity relocated into the
// freed position; it equals e when the last element was removed.
func (l *Logger) LogRemove(e Entity, pos int, moved Entity) {
	if l.debugEnabled() {
		l.Debug("remove completed",
			"entity", uint32(e),
			"position", pos,
			"moved", uint32(moved),
		)
	}
}

// LogGrow logs a buffer growth event.
func (l *Logger) LogGrow(buffer string, oldCap, newCap int, err error) {
	if err != nil {
		l.Error("buffer growth failed",
			"buffer", buffer,
			"old_cap", oldCap,
			"requested", newCap,
			"error", err,
		)
		return
	}
	if l.debugEnabled() {
		l.Debug("buffer grown",
			"buffer", buffer,
			"old_cap", oldCap,
			"new_cap", newCap,
		)
	}
}

// LogCompact logs a compaction.
func (l *Logger) LogCompact(denseCap, sparseCap int, err error) {
	if err != nil {
		l.Error("compact failed",
			"error", err,
		)
		return
	}
	if l.debugEnabled() {
		l.Debug("compact completed",
			"dense_cap", denseCap,
			"sparse_cap", sparseCap,
		)
	}
}

// LogPrecondition logs a contract violation right before it panics.
func (l *Logger) LogPrecondition(op string, e Entity, err error) {
	l.Error("precondition violated",
		"op", op,
		"entity", uint32(e),
		"error", err,
	)
}

// LogClose logs the release of both buffers.
func (l *Logger) LogClose(releasedBytes int64) {
	if l.debugEnabled() {
		l.Debug("set closed",
			"released_bytes", releasedBytes,
		)
	}
}
