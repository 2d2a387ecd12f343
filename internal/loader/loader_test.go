package loader_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DylanCEdwards/weather-app/internal/dataset"
	"github.com/DylanCEdwards/weather-app/internal/loader"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weather.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCSV(t, "DATE,UT_temp_mean,DE_temp_mean\n20200101,30,10\n20200102,40,12\n")

	ds, err := loader.New(path, slog.Default()).Load()
	require.NoError(t, err)

	assert.Equal(t, 2, ds.NumRows())
	assert.Equal(t, []string{"UT_temp_mean", "DE_temp_mean"}, ds.Columns())
	assert.Equal(t, []string{"UT", "DE_BILT"}, ds.Cities())
}

func TestLoad_LogsDatasetShape(t *testing.T) {
	path := writeCSV(t, "DATE,UT_temp_mean\n20200101,30\n20200102,40\n")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := loader.New(path, logger).Load()
	require.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, "dataset loaded")
	assert.Contains(t, logged, "rows=2")
	assert.Contains(t, logged, "cities=1")
	assert.Contains(t, logged, "loaded_at=")
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does_not_exist.csv")

	_, err := loader.New(path, slog.Default()).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, loader.ErrNotFound)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_MissingDateColumn(t *testing.T) {
	path := writeCSV(t, "UT_temp_mean\n30\n40\n")

	_, err := loader.New(path, slog.Default()).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrDataFormat)
}

func TestLoad_MalformedDates(t *testing.T) {
	path := writeCSV(t, "DATE,UT_temp_mean\nJanuary 1st,30\n")

	_, err := loader.New(path, slog.Default()).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrDataFormat)
}
