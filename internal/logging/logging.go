// Package logging wraps log/slog with the handlers and field names used by
// the bestfirst command.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with search-specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return New(slog.DiscardHandler)
}

// Level maps the verbose flag to a minimum level.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

// WithDomain tags every record with the puzzle or routing domain.
func (l *Logger) WithDomain(domain string) *Logger {
	return &Logger{Logger: l.Logger.With("domain", domain)}
}

// LogSolve logs the outcome of one solve call.
func (l *Logger) LogSolve(query string, steps, expanded int, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("solve failed",
			"query", query,
			"expanded", expanded,
			"elapsed", elapsed,
			"error", err,
		)
		return
	}
	l.Info("solve completed",
		"query", query,
		"steps", steps,
		"expanded", expanded,
		"elapsed", elapsed,
	)
}
