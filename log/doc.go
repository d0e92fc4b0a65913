// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stdout)
//	logger.Info("interpreter started", slog.String("source", path))
//	logger.Error("run failed", slog.Any("error", err))
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger := log.Make(os.Stdout,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// # Default Logger
//
// Package-level functions log through a shared default logger writing to
// standard error. [Config] reconfigures it, typically from command-line
// flags:
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithFormat(log.FormatText))
//	log.Debug("now visible")
//
// # Zero Value
//
// The zero value Logger silently discards all messages, so components may
// hold an optional Logger without nil checks at every call site.
package log
