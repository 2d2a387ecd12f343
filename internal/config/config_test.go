package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDataPath = "testdata/weather.csv"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATA_PATH", testDataPath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testDataPath, cfg.DataPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Equal(t, 2000, cfg.YearMin)
	assert.Equal(t, 2010, cfg.YearMax)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("DATA_PATH", "/var/data/knmi.csv")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("METRICS_ADDR", ":9090")
	t.Setenv("YEAR_MIN", "1995")
	t.Setenv("YEAR_MAX", "2025")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/data/knmi.csv", cfg.DataPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, 1995, cfg.YearMin)
	assert.Equal(t, 2025, cfg.YearMax)
}

func TestLoad_MissingDataPath(t *testing.T) {
	t.Setenv("DATA_PATH", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATA_PATH")
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("DATA_PATH", testDataPath)
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("DATA_PATH", testDataPath)
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("DATA_PATH", testDataPath)
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoad_InvalidYearBound(t *testing.T) {
	t.Setenv("DATA_PATH", testDataPath)
	t.Setenv("YEAR_MIN", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YEAR_MIN")
}

func TestLoad_YearBoundsInverted(t *testing.T) {
	t.Setenv("DATA_PATH", testDataPath)
	t.Setenv("YEAR_MIN", "2015")
	t.Setenv("YEAR_MAX", "2005")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YEAR_MIN")
}
