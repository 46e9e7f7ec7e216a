package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// DefaultContextProvider supplies the context for the non-Context logging
// methods.
//
//nolint:gochecknoglobals
var DefaultContextProvider = context.TODO

//nolint:gochecknoglobals
var (
	defaultMu  sync.RWMutex
	defaultLog = Make(os.Stderr)
)

// Default returns the package default logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultLog
}

// Config reconfigures the package default logger with the given options,
// keeping every setting they do not name.
func Config(opts ...Option) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultLog = defaultLog.Wrap(opts...)
}

// SetDefault replaces the package default logger and returns the previous one.
func SetDefault(l Logger) Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	prev := defaultLog
	defaultLog = l

	return prev
}

// With returns the default logger with the given attributes added.
func With(attrs ...slog.Attr) Logger { return Default().With(attrs...) }

// TraceContext logs at Trace level through the default logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, callerSkip, LevelTrace, msg, attrs...)
}

// Trace logs at Trace level through the default logger.
func Trace(msg string, attrs ...slog.Attr) {
	Default().logContext(
		DefaultContextProvider(), callerSkip, LevelTrace, msg, attrs...)
}

// DebugContext logs at Debug level through the default logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, callerSkip, LevelDebug, msg, attrs...)
}

// Debug logs at Debug level through the default logger.
func Debug(msg string, attrs ...slog.Attr) {
	Default().logContext(
		DefaultContextProvider(), callerSkip, LevelDebug, msg, attrs...)
}

// InfoContext logs at Info level through the default logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, callerSkip, LevelInfo, msg, attrs...)
}

// Info logs at Info level through the default logger.
func Info(msg string, attrs ...slog.Attr) {
	Default().logContext(
		DefaultContextProvider(), callerSkip, LevelInfo, msg, attrs...)
}

// WarnContext logs at Warn level through the default logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, callerSkip, LevelWarn, msg, attrs...)
}

// Warn logs at Warn level through the default logger.
func Warn(msg string, attrs ...slog.Attr) {
	Default().logContext(
		DefaultContextProvider(), callerSkip, LevelWarn, msg, attrs...)
}

// ErrorContext logs at Error level through the default logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, callerSkip, LevelError, msg, attrs...)
}

// Error logs at Error level through the default logger.
func Error(msg string, attrs ...slog.Attr) {
	Default().logContext(
		DefaultContextProvider(), callerSkip, LevelError, msg, attrs...)
}
