// Package log provides a leveled structured logger based on [log/slog].
//
// A [Logger] is configured once, when it is made, using functional options.
// Its configuration cannot change afterwards, so a Logger value may be copied
// and used from any number of goroutines. The zero Logger discards every
// record, which lets library code hold one unconditionally.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr, log.WithLevel(log.LevelDebug))
//	logger.Info("evaluated", slog.String("expr", src), slog.Float64("result", v))
//
// # Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Trace sits below slog's debug level and is
// intended for per-expression parser events. Records below the configured
// level are discarded before any attribute is formatted.
//
// # Output
//
// Records are written as [FormatText] (the default) or [FormatJSON], using
// the slog handlers. With [WithPretty], the same records are colorized for a
// terminal instead. [WithTimeLayout] accepts any named layout from the [time]
// package or a verbatim layout string; "none" omits timestamps.
//
// # Package-Level Logger
//
// The functions [Trace], [Debug], [Info], [Warn], and [Error] (and their
// Context forms) write to a package-level logger, which [Config] reconfigures.
// Calls made without a context use [DefaultContextProvider].
package log
