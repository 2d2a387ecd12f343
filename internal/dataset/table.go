package dataset

import (
	"time"

	"github.com/go-gota/gota/dataframe"
)

// Table is an in-memory columnar table with a parallel temporal index,
// aligned by row position. Filters on a Dataset return Table values that
// share the source's column set but hold only the matching rows; such
// views have no identity of their own and are meant to be discarded after
// use.
type Table struct {
	df    dataframe.DataFrame
	dates []time.Time
}

// Columns returns all column names in table order.
func (t Table) Columns() []string {
	return t.df.Names()
}

// HasColumn reports whether a column exists in the table.
func (t Table) HasColumn(name string) bool {
	for _, n := range t.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// NumRows returns the number of rows.
func (t Table) NumRows() int {
	if len(t.df.Names()) == 0 {
		return 0
	}
	return t.df.Nrow()
}

// Dates returns the temporal index, one entry per row.
func (t Table) Dates() []time.Time {
	return t.dates
}

// Floats extracts a column as float64 values, one per row. Non-numeric
// cells surface as NaN. The second return is false when the column does
// not exist.
func (t Table) Floats(name string) ([]float64, bool) {
	if !t.HasColumn(name) {
		return nil, false
	}
	col := t.df.Col(name)
	if col.Err != nil {
		return nil, false
	}
	return col.Float(), true
}

// subset returns a view holding only the rows at the given positions.
// An empty position list yields an empty view, not an error.
func (t Table) subset(indexes []int) Table {
	dates := make([]time.Time, len(indexes))
	for i, idx := range indexes {
		dates[i] = t.dates[idx]
	}
	return Table{df: t.df.Subset(indexes), dates: dates}
}
