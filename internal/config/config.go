// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application settings, populated from environment
// variables.
type Config struct {
	DataPath        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// MetricsAddr enables the metrics/health sidecar server when set;
	// empty leaves it off for plain interactive use.
	MetricsAddr string

	// YearMin and YearMax bound the years the CLI accepts for year
	// filters. The core filters perform no range validation themselves.
	YearMin int
	YearMax int
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	yearMin, err := parseInt("YEAR_MIN", 2000)
	if err != nil {
		return nil, err
	}
	yearMax, err := parseInt("YEAR_MAX", 2010)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataPath:        os.Getenv("DATA_PATH"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "text"),
		ShutdownTimeout: shutdownTimeout,
		MetricsAddr:     os.Getenv("METRICS_ADDR"),
		YearMin:         yearMin,
		YearMax:         yearMax,
	}

	if cfg.DataPath == "" {
		return nil, errors.New("DATA_PATH is required")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be json or text", cfg.LogFormat)
	}
	if cfg.YearMin > cfg.YearMax {
		return nil, fmt.Errorf("YEAR_MIN (%d) must not exceed YEAR_MAX (%d)", cfg.YearMin, cfg.YearMax)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	s := envOrDefault(key, fallback)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, s)
	}
	return d, nil
}

func parseInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", key, s)
	}
	return n, nil
}
