package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"alcatelz/internal/app/server/config"
)

// New returns the logger for env: colored text locally, JSON elsewhere.
func New(env string) *slog.Logger {
	return NewWithLevel(env, "")
}

// NewWithLevel is New with the minimum level taken from level
// (debug, info, warn, error). An empty level keeps the env default.
func NewWithLevel(env, level string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: ParseLevel(level, slog.LevelDebug)}),
		)
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: ParseLevel(level, slog.LevelInfo)}),
		)
	default:
		log = setupPrettySlog(ParseLevel(level, slog.LevelDebug))
	}

	return log
}

// ParseLevel maps a level name to slog.Level, falling back to def.
func ParseLevel(level string, def slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return def
	}
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}

// Discard returns a logger that drops everything, for tests and quiet commands.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
