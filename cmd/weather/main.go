// Command weather loads a per-city daily weather CSV and answers
// interactive descriptive-statistics queries over it.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/DylanCEdwards/weather-app/internal/adapter/http"
	"github.com/DylanCEdwards/weather-app/internal/cli"
	"github.com/DylanCEdwards/weather-app/internal/config"
	"github.com/DylanCEdwards/weather-app/internal/loader"
	"github.com/DylanCEdwards/weather-app/internal/observability"
	"github.com/DylanCEdwards/weather-app/internal/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	start := time.Now()
	ds, err := loader.New(cfg.DataPath, logger).Load()
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}
	metrics.LoadDuration.Observe(time.Since(start).Seconds())
	metrics.DatasetRows.Set(float64(ds.NumRows()))
	metrics.DatasetCities.Set(float64(len(ds.Cities())))
	metrics.DatasetLoadedTimestamp.Set(float64(ds.LoadedAt().Unix()))

	engine := stats.New(ds)
	app := cli.New(ds, engine, os.Stdin, os.Stdout, logger, metrics, cfg.YearMin, cfg.YearMax)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional metrics/health sidecar (enabled via METRICS_ADDR).
	var srv *httpadapter.Server
	if cfg.MetricsAddr != "" {
		srv = httpadapter.NewServer(cfg.MetricsAddr, app, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("session error", "error", err)
	}

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
