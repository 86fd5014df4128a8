package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a new structured logger using slog
func New() *slog.Logger {
	return NewWithLevel(slog.LevelInfo)
}

// NewWithLevel creates a new logger with specified log level
func NewWithLevel(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

// ParseLevel maps a config level name to slog.Level, falling back to info
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
