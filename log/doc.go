// Package log provides a simplified, concurrency-safe logging interface based
// on [log/slog].
//
// Time formatting, caller information, output format, and pretty printing are
// chosen at logger creation time using functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("parse complete", slog.Int("forms", 3))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// An existing logger is reconfigured with [Logger.Wrap], which keeps every
// setting not named by the given options.
//
// # Zero Value
//
// The zero [Logger] discards everything. Library packages accept a Logger
// through an option and log unconditionally; callers that never supply one
// pay only for the level check.
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Trace sits below slog's Debug and is used by
// the parser and projector for per-call diagnostics.
//
// # Default Logger
//
// The package-level functions ([Info], [ErrorContext], ...) write through a
// default logger that [Config] reconfigures. The CLI configures it from its
// --log-* flags.
package log
