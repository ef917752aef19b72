// Package solverlog wraps log/slog the way
// rias-glitch-telegram-webapp's internal/logger does: a global
// default logger selected once at startup, with package-level
// Info/Debug/Warn/Error helpers. Only cmd/msolve calls into it; the
// solver core itself never logs.
package solverlog

import (
	"log/slog"
	"os"
)

var defaultLogger *slog.Logger

// Init selects the global logger's level and output format. json
// selects slog's JSON handler; otherwise a human-readable text handler
// is used.
func Init(level string, json bool) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Get returns the global logger, initializing it with defaults on
// first use.
func Get() *slog.Logger {
	if defaultLogger == nil {
		Init("info", false)
	}
	return defaultLogger
}

func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// With returns a logger carrying the given attributes on every
// subsequent record.
func With(args ...any) *slog.Logger {
	return Get().With(args...)
}
