package cellui

import (
	"log/slog"
	"os"
)

// logLevel controls package log verbosity. Raise to slog.LevelDebug to trace
// event routing and focus changes.
var logLevel = func() *slog.LevelVar {
	v := new(slog.LevelVar)
	v.Set(slog.LevelWarn)
	return v
}()

// logger is the package logger for state-machine diagnostics.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetLogLevel sets the package log level.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}

// verbose reports whether debug logging is enabled.
func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}
