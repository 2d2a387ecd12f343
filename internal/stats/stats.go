// Package stats computes descriptive statistics over weather dataset
// columns: mean, median, min, max, sample standard deviation, mode, and
// range, plus an ordered per-city temperature summary.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/DylanCEdwards/weather-app/internal/dataset"
)

// ColumnNotFoundError reports a statistic request against a column that is
// absent from the table in use for that call.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("Column '%s' not found in dataset", e.Column)
}

// Engine computes statistics against one dataset's full table by default.
// Every method also accepts an optional view override: pass a non-nil
// *dataset.Table (typically a filtered view, possibly from another
// dataset) to compute against it for that single call.
//
// An Engine holds no per-call state and is safe for concurrent reads.
type Engine struct {
	ds    *dataset.Dataset
	table dataset.Table
}

// New creates an Engine bound to the dataset's full table.
func New(ds *dataset.Dataset) *Engine {
	return &Engine{ds: ds, table: ds.Table()}
}

// column resolves the table for this call, validates that the column
// exists in it, and returns the column's non-missing values.
func (e *Engine) column(name string, view *dataset.Table) ([]float64, error) {
	table := e.table
	if view != nil {
		table = *view
	}
	raw, ok := table.Floats(name)
	if !ok {
		return nil, &ColumnNotFoundError{Column: name}
	}
	vals := make([]float64, 0, len(raw))
	for _, v := range raw {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	return vals, nil
}

// Mean returns the arithmetic average of a column, or NaN when empty.
func (e *Engine) Mean(column string, view *dataset.Table) (float64, error) {
	vals, err := e.column(column, view)
	if err != nil {
		return 0, err
	}
	return mean(vals), nil
}

// Median returns the middle value of the sorted column, averaging the two
// middle values for an even count. NaN when empty.
func (e *Engine) Median(column string, view *dataset.Table) (float64, error) {
	vals, err := e.column(column, view)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return math.NaN(), nil
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// Min returns the smallest value of a column, or NaN when empty.
func (e *Engine) Min(column string, view *dataset.Table) (float64, error) {
	vals, err := e.column(column, view)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return math.NaN(), nil
	}
	low := vals[0]
	for _, v := range vals[1:] {
		if v < low {
			low = v
		}
	}
	return low, nil
}

// Max returns the largest value of a column, or NaN when empty.
func (e *Engine) Max(column string, view *dataset.Table) (float64, error) {
	vals, err := e.column(column, view)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return math.NaN(), nil
	}
	high := vals[0]
	for _, v := range vals[1:] {
		if v > high {
			high = v
		}
	}
	return high, nil
}

// StdDev returns the sample standard deviation (n-1 denominator) of a
// column. NaN when fewer than two values are present.
func (e *Engine) StdDev(column string, view *dataset.Table) (float64, error) {
	vals, err := e.column(column, view)
	if err != nil {
		return 0, err
	}
	if len(vals) < 2 {
		return math.NaN(), nil
	}
	m := mean(vals)
	sumSq := 0.0
	for _, v := range vals {
		diff := v - m
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(vals)-1)), nil
}

// Mode returns the most frequent value of a column; frequency ties break
// toward the smallest value. An empty column yields NaN, not an error.
func (e *Engine) Mode(column string, view *dataset.Table) (float64, error) {
	vals, err := e.column(column, view)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return math.NaN(), nil
	}

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	// One pass over the sorted values: runs of equal values are counted,
	// and a strictly longer run replaces the current mode, so ties keep
	// the smallest value.
	mode, best := sorted[0], 1
	run := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
			mode = sorted[i]
		}
	}
	return mode, nil
}

// Range returns Max minus Min. It is computed by invoking Max and Min
// rather than as an independent aggregate, so validation and view
// resolution run once per operand and errors surface exactly as a failed
// Max or Min would.
func (e *Engine) Range(column string, view *dataset.Table) (float64, error) {
	high, err := e.Max(column, view)
	if err != nil {
		return 0, err
	}
	low, err := e.Min(column, view)
	if err != nil {
		return 0, err
	}
	return high - low, nil
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
