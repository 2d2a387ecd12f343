// Package loader reads weather CSV files from disk into datasets. All
// file I/O lives here; the dataset and stats packages operate purely on
// in-memory tables.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-gota/gota/dataframe"

	"github.com/DylanCEdwards/weather-app/internal/dataset"
)

// ErrNotFound indicates the dataset path does not resolve to a readable
// file.
var ErrNotFound = errors.New("dataset not found")

// CSVLoader reads a CSV file and wraps it in a Dataset.
type CSVLoader struct {
	path   string
	logger *slog.Logger
}

// New creates a loader for the given path.
func New(path string, logger *slog.Logger) *CSVLoader {
	return &CSVLoader{path: path, logger: logger}
}

// Load reads the CSV file and returns the wrapped Dataset. It fails with
// an error wrapping ErrNotFound when the path does not exist, and with
// one wrapping dataset.ErrDataFormat when the content cannot be parsed
// into a dated column layout.
func (l *CSVLoader) Load() (*dataset.Dataset, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, l.path)
		}
		return nil, fmt.Errorf("open %s: %w", l.path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", dataset.ErrDataFormat, df.Err)
	}

	ds, err := dataset.New(df)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", l.path, err)
	}

	l.logger.Info("dataset loaded",
		"path", l.path,
		"rows", ds.NumRows(),
		"columns", len(ds.Columns()),
		"cities", len(ds.Cities()),
		"loaded_at", ds.LoadedAt(),
	)
	return ds, nil
}
