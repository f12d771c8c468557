// Package log provides the console logger shared by the scanner and the CLI.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the process-wide logger. It writes human-readable lines to stderr
// so that stdout carries only the report.
//
//nolint:gochecknoglobals // Shared logger
var Logger = newLogger(os.Stderr)

func newLogger(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}

	return zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}

// Info logs an info message.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error logs an error message.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// SetDebugMode switches the logger to debug level.
func SetDebugMode() {
	SetLevel(zerolog.DebugLevel)
}

// SetLevel sets the minimum level of the logger.
func SetLevel(level zerolog.Level) {
	Logger = Logger.Level(level)
}

// SetOutput redirects the logger to w, keeping the current level.
func SetOutput(w io.Writer) {
	level := Logger.GetLevel()
	Logger = newLogger(w).Level(level)
}
