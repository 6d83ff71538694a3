package crcfold

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with crcfold-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithImpl adds the bound tier to the logger.
func (l *Logger) WithImpl(impl Impl) *Logger {
	return &Logger{
		Logger: l.Logger.With("impl", impl.String()),
	}
}

// WithBlob adds a blob name field to the logger.
func (l *Logger) WithBlob(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("blob", name),
	}
}

// LogBind logs the features behind a binding. Call it on a logger from
// WithImpl.
func (l *Logger) LogBind(ctx context.Context, f Features, forced bool) {
	l.DebugContext(ctx, "crc implementation bound",
		"features", f.String(),
		"vector_bits", f.VectorBits(),
		"forced", forced,
	)
}

// LogSum logs one checksum computation.
func (l *Logger) LogSum(ctx context.Context, name string, size int64, crc uint32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "checksum failed",
			"blob", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "checksum completed",
			"blob", name,
			"size", size,
			"crc", crc,
		)
	}
}

// LogCheck logs the outcome of a verification run.
func (l *Logger) LogCheck(ctx context.Context, ok, mismatched, missing int) {
	if mismatched > 0 || missing > 0 {
		l.WarnContext(ctx, "verification completed with failures",
			"ok", ok,
			"mismatched", mismatched,
			"missing", missing,
		)
	} else {
		l.InfoContext(ctx, "verification completed",
			"ok", ok,
		)
	}
}
