package dataset

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
)

var (
	// ErrDataFormat indicates structurally invalid input: a missing or
	// unparsable DATE column, or malformed date-range endpoints.
	ErrDataFormat = errors.New("invalid data format")

	// ErrInvalidArgument indicates an unsupported enumerated value, such as
	// an unknown season name.
	ErrInvalidArgument = errors.New("invalid argument")
)

// dateColumn is the source column consumed into the temporal index.
const dateColumn = "DATE"

// dateLayout is the raw DATE format: 8-digit YYYYMMDD.
const dateLayout = "20060102"

// rangeLayout is the format for user-facing date-range endpoints.
const rangeLayout = "2006-01-02"

// specialCities maps derived prefix codes to full city codes for the
// cities whose names span more than one underscore-separated token.
// De Bilt is the only such city in the supported dataset.
var specialCities = map[string]string{
	"DE": "DE_BILT",
}

// Dataset owns one measurement table and its temporal index. It is
// immutable after construction: the city set is derived once and cached,
// and every filter returns a fresh Table view.
type Dataset struct {
	table    Table
	cities   []string
	loadedAt time.Time
}

// New wraps a dataframe in a Dataset. The DATE column is parsed into the
// temporal index and removed from the table; the remaining column names
// are scanned for city codes. Returns an error wrapping ErrDataFormat if
// DATE is absent or not in YYYYMMDD form.
func New(df dataframe.DataFrame) (*Dataset, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, df.Err)
	}

	dates, err := parseDateIndex(df)
	if err != nil {
		return nil, err
	}

	data := df.Drop(dateColumn)
	if data.Err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, data.Err)
	}

	return &Dataset{
		table:    Table{df: data, dates: dates},
		cities:   deriveCities(data.Names()),
		loadedAt: clock.Now(),
	}, nil
}

// parseDateIndex converts the DATE column into a chronological index.
// Rows are kept in source order; no re-sorting happens here.
func parseDateIndex(df dataframe.DataFrame) ([]time.Time, error) {
	col := df.Col(dateColumn)
	if col.Err != nil {
		return nil, fmt.Errorf("%w: missing %s column", ErrDataFormat, dateColumn)
	}

	records := col.Records()
	dates := make([]time.Time, len(records))
	for i, rec := range records {
		t, err := time.Parse(dateLayout, strings.TrimSpace(rec))
		if err != nil {
			return nil, fmt.Errorf("%w: %s value %q is not YYYYMMDD", ErrDataFormat, dateColumn, rec)
		}
		dates[i] = t
	}
	return dates, nil
}

// deriveCities extracts city codes from column names: the prefix before
// the first underscore, first-occurrence order, duplicates removed.
// Columns without an underscore contribute no city.
func deriveCities(columns []string) []string {
	seen := make(map[string]bool)
	var cities []string
	for _, name := range columns {
		code, _, found := strings.Cut(name, "_")
		if !found {
			continue
		}
		if full, ok := specialCities[code]; ok {
			code = full
		}
		if !seen[code] {
			seen[code] = true
			cities = append(cities, code)
		}
	}
	return cities
}

// Table returns the full, unfiltered table.
func (d *Dataset) Table() Table {
	return d.table
}

// Columns returns all column names in table order.
func (d *Dataset) Columns() []string {
	return d.table.Columns()
}

// HasColumn reports whether a column exists in the dataset.
func (d *Dataset) HasColumn(name string) bool {
	return d.table.HasColumn(name)
}

// NumRows returns the number of rows in the dataset.
func (d *Dataset) NumRows() int {
	return d.table.NumRows()
}

// Cities returns the cached city set derived at construction. Successive
// calls return the identical slice; callers must not modify it.
func (d *Dataset) Cities() []string {
	return d.cities
}

// HasCity reports whether a city code is in the cached city set. The raw
// prefix of a remapped city is not a member: HasCity("DE") is false even
// when DE_* columns exist, while HasCity("DE_BILT") is true.
func (d *Dataset) HasCity(code string) bool {
	for _, c := range d.cities {
		if c == code {
			return true
		}
	}
	return false
}

// LoadedAt returns the construction timestamp.
func (d *Dataset) LoadedAt() time.Time {
	return d.loadedAt
}

// filter returns a view of the rows whose index date satisfies keep.
func (d *Dataset) filter(keep func(time.Time) bool) Table {
	var indexes []int
	for i, t := range d.table.dates {
		if keep(t) {
			indexes = append(indexes, i)
		}
	}
	return d.table.subset(indexes)
}

// FilterByMonth returns the rows whose date falls in the given month
// (1-12), across all years. Out-of-range months are not an error; they
// simply match no rows. Callers driving this from user input validate
// the range upstream.
func (d *Dataset) FilterByMonth(month int) Table {
	return d.filter(func(t time.Time) bool {
		return int(t.Month()) == month
	})
}

// FilterByYear returns the rows whose date falls in the given year.
func (d *Dataset) FilterByYear(year int) Table {
	return d.filter(func(t time.Time) bool {
		return t.Year() == year
	})
}

// FilterByMonthAndYear returns the rows matching both month and year.
func (d *Dataset) FilterByMonthAndYear(month, year int) Table {
	return d.filter(func(t time.Time) bool {
		return int(t.Month()) == month && t.Year() == year
	})
}

// FilterByDateRange returns the rows within [start, end], both endpoints
// inclusive and in 2006-01-02 form. A malformed endpoint returns an error
// wrapping ErrDataFormat; a range that matches nothing (including
// start > end) returns an empty view.
func (d *Dataset) FilterByDateRange(start, end string) (Table, error) {
	from, err := time.Parse(rangeLayout, start)
	if err != nil {
		return Table{}, fmt.Errorf("%w: start date %q is not YYYY-MM-DD", ErrDataFormat, start)
	}
	to, err := time.Parse(rangeLayout, end)
	if err != nil {
		return Table{}, fmt.Errorf("%w: end date %q is not YYYY-MM-DD", ErrDataFormat, end)
	}

	return d.filter(func(t time.Time) bool {
		return !t.Before(from) && !t.After(to)
	}), nil
}

// FilterBySeason returns the rows in a meteorological season: spring
// (Mar-May), summer (Jun-Aug), fall (Sep-Nov), or winter (Dec-Feb).
// Season names are case-insensitive; any other token returns an error
// wrapping ErrInvalidArgument. Winter crosses the year boundary, so its
// predicate is disjunctive rather than a contiguous month range.
func (d *Dataset) FilterBySeason(season string) (Table, error) {
	switch strings.ToLower(season) {
	case "spring":
		return d.filter(func(t time.Time) bool {
			return t.Month() >= time.March && t.Month() <= time.May
		}), nil
	case "summer":
		return d.filter(func(t time.Time) bool {
			return t.Month() >= time.June && t.Month() <= time.August
		}), nil
	case "fall":
		return d.filter(func(t time.Time) bool {
			return t.Month() >= time.September && t.Month() <= time.November
		}), nil
	case "winter":
		return d.filter(func(t time.Time) bool {
			return t.Month() == time.December || t.Month() <= time.February
		}), nil
	default:
		return Table{}, fmt.Errorf("%w: season %q must be one of spring, summer, fall, winter", ErrInvalidArgument, season)
	}
}
