// Package observability provides logger construction and Prometheus
// metrics for the weather statistics service.
package observability

import (
	"log/slog"
	"os"

	"github.com/DylanCEdwards/weather-app/internal/config"
)

// NewLogger builds the process logger from config. Logs go to stderr so
// they never interleave with the interactive prompt on stdout.
func NewLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
