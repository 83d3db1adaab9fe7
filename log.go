package hud

import (
	"log/slog"
	"os"
)

// logger receives every diagnostic the package emits. Resource misses and
// transient tree inconsistencies are warnings; debug mode adds tree checks.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// SetLogger replaces the package logger. A nil logger discards all output.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return logger
}
