// Package logging provides structured logging for the quicksave CLI using slog.
//
// The package supports both text and JSON output formats, configurable log
// levels, and helpers for testing. All loggers are based on the standard
// library's [log/slog] package. The text handler colorizes output when the
// writer is a TTY that supports it.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("snapshot created", "game", "skyrim")
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework.
package logging
