// Package logging wraps slog with the field names seqsa uses for its
// load / build / search timings.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Logger wraps slog.Logger with seqsa-specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to w. format is "text" or "json".
func New(w io.Writer, format string, level slog.Level) (*Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch format {
	case "text", "":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return &Logger{Logger: slog.New(h)}, nil
}

// Noop discards everything.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))}
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// WithSource tags every record with the sequence source.
func (l *Logger) WithSource(src string) *Logger {
	return &Logger{Logger: l.Logger.With("source", src)}
}

// LogLoad logs a finished sequence load.
func (l *Logger) LogLoad(ctx context.Context, validBytes, records int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed", "error", err)
		return
	}
	l.InfoContext(ctx, "sequence loaded",
		"valid_bytes", validBytes,
		"records", records,
		"elapsed", elapsed,
	)
}

// LogBuild logs a finished suffix index construction.
func (l *Logger) LogBuild(ctx context.Context, algorithm string, suffixes int, elapsed time.Duration) {
	l.InfoContext(ctx, "index built",
		"algorithm", algorithm,
		"suffixes", suffixes,
		"elapsed", elapsed,
	)
}

// LogSearch logs a finished batch of queries.
func (l *Logger) LogSearch(ctx context.Context, method string, patterns, hits int, elapsed time.Duration) {
	l.InfoContext(ctx, "search completed",
		"method", method,
		"patterns", patterns,
		"hits", hits,
		"elapsed", elapsed,
	)
}
