// Package progress carries the observational side of long-running algorithms:
// structured logging, progress tracking and Prometheus metrics. Nothing in this
// package affects results; algorithms only ever call a Tracker.
package progress

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with graphalgo-specific field helpers so every
// component logs with the same keys.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler on stderr at info level is used.
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

// NewTextLogger creates a Logger that writes human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON lines to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// WithRunID tags every record with the id of one computation.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{Logger: l.Logger.With("run_id", id)}
}

// WithAlgorithm tags every record with the algorithm name.
func (l *Logger) WithAlgorithm(name string) *Logger {
	return &Logger{Logger: l.Logger.With("algorithm", name)}
}

// WithGraph tags every record with the graph dimensions.
func (l *Logger) WithGraph(nodes, relationships int) *Logger {
	return &Logger{Logger: l.Logger.With("nodes", nodes, "relationships", relationships)}
}
