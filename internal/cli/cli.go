// Package cli implements the interactive query loop: pick a city, apply
// an optional time filter, and print the seven-statistic temperature
// summary. All numeric range validation for user input happens here; the
// dataset filters themselves accept whatever they are given.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/DylanCEdwards/weather-app/internal/dataset"
	"github.com/DylanCEdwards/weather-app/internal/observability"
	"github.com/DylanCEdwards/weather-app/internal/stats"
)

const filterMenu = `Options:
     1. All-time summary
     2. Filter by month
     3. Filter by year
     4. Filter by month and year
     5. Filter by date range
     6. Filter by season
     0. Return to city selection
`

var seasons = map[string]bool{
	"winter": true,
	"spring": true,
	"summer": true,
	"fall":   true,
}

// App drives one interactive session over a reader/writer pair, so tests
// can script stdin and capture stdout.
type App struct {
	ds      *dataset.Dataset
	engine  *stats.Engine
	in      *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
	metrics *observability.Metrics
	yearMin int
	yearMax int
	running atomic.Bool
}

// New creates an App reading prompts from in and writing to out.
func New(ds *dataset.Dataset, engine *stats.Engine, in io.Reader, out io.Writer,
	logger *slog.Logger, metrics *observability.Metrics, yearMin, yearMax int) *App {
	return &App{
		ds:      ds,
		engine:  engine,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
		metrics: metrics,
		yearMin: yearMin,
		yearMax: yearMax,
	}
}

// CheckReadiness reports ready once the session loop is running with a
// loaded dataset.
func (a *App) CheckReadiness(_ context.Context) error {
	if !a.running.Load() {
		return errors.New("session is not running")
	}
	return nil
}

// DatasetStatus describes the dataset this session serves, for the
// readiness endpoint.
func (a *App) DatasetStatus() (rows, cities int, loadedAt time.Time) {
	return a.ds.NumRows(), len(a.ds.Cities()), a.ds.LoadedAt()
}

// Run executes the session loop until the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.running.Store(true)
	defer a.running.Store(false)

	for _, city := range a.ds.Cities() {
		fmt.Fprintln(a.out, city)
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		city, ok := askUntilValid(a.in, a.out,
			"Enter a city name for weather data (Enter 'Q' to quit): ",
			func(s string) (string, error) { return strings.ToUpper(strings.TrimSpace(s)), nil },
			func(s string) bool { return s == "Q" || a.ds.HasCity(s) },
			"City not found. Please try again.")
		if !ok {
			return nil
		}
		if city == "Q" {
			fmt.Fprintln(a.out, "Goodbye")
			return nil
		}

		if !a.filterLoop(ctx, city) {
			return nil
		}
	}
}

// filterLoop runs the filter menu for one chosen city. Returns false when
// input is exhausted and the session should end.
func (a *App) filterLoop(ctx context.Context, city string) bool {
	for {
		if ctx.Err() != nil {
			return false
		}

		fmt.Fprint(a.out, filterMenu)
		choice, ok := askUntilValid(a.in, a.out,
			"Choose a filter option (0-6): ",
			strconv.Atoi,
			func(n int) bool { return n >= 0 && n <= 6 },
			"Enter a number between 0 and 6.")
		if !ok {
			return false
		}
		if choice == 0 {
			return true
		}

		view, label, ok := a.buildView(choice)
		if !ok {
			return false
		}
		if view == nil && choice != 1 {
			// Filter construction failed on user input; re-prompt.
			continue
		}

		a.printSummary(city, view, label)
	}
}

// buildView collects filter parameters for the chosen menu option and
// produces the view to compute against. A nil view with ok=true means
// either the all-time table (choice 1) or a failed filter that should
// re-prompt.
func (a *App) buildView(choice int) (*dataset.Table, string, bool) {
	switch choice {
	case 1:
		return nil, "none", true

	case 2:
		month, ok := a.askMonth()
		if !ok {
			return nil, "", false
		}
		view := a.ds.FilterByMonth(month)
		return &view, "month", true

	case 3:
		year, ok := a.askYear()
		if !ok {
			return nil, "", false
		}
		view := a.ds.FilterByYear(year)
		return &view, "year", true

	case 4:
		month, ok := a.askMonth()
		if !ok {
			return nil, "", false
		}
		year, ok := a.askYear()
		if !ok {
			return nil, "", false
		}
		view := a.ds.FilterByMonthAndYear(month, year)
		return &view, "month_year", true

	case 5:
		start, ok := a.askDate("Enter start date (YYYY-MM-DD): ")
		if !ok {
			return nil, "", false
		}
		end, ok := a.askDate("Enter end date (YYYY-MM-DD): ")
		if !ok {
			return nil, "", false
		}
		view, err := a.ds.FilterByDateRange(start, end)
		if err != nil {
			a.filterError(err)
			return nil, "", true
		}
		return &view, "date_range", true

	case 6:
		season, ok := askUntilValid(a.in, a.out,
			"Enter season (winter, spring, summer, fall): ",
			func(s string) (string, error) { return strings.ToLower(strings.TrimSpace(s)), nil },
			func(s string) bool { return seasons[s] },
			"Invalid season.")
		if !ok {
			return nil, "", false
		}
		view, err := a.ds.FilterBySeason(season)
		if err != nil {
			a.filterError(err)
			return nil, "", true
		}
		return &view, "season", true
	}

	return nil, "", true
}

func (a *App) askMonth() (int, bool) {
	return askUntilValid(a.in, a.out,
		"Enter month (1-12): ",
		strconv.Atoi,
		func(m int) bool { return m >= 1 && m <= 12 },
		"Month must be 1-12.")
}

func (a *App) askYear() (int, bool) {
	return askUntilValid(a.in, a.out,
		fmt.Sprintf("Enter year (%d-%d): ", a.yearMin, a.yearMax),
		strconv.Atoi,
		func(y int) bool { return y >= a.yearMin && y <= a.yearMax },
		fmt.Sprintf("Year must be between %d and %d.", a.yearMin, a.yearMax))
}

func (a *App) askDate(prompt string) (string, bool) {
	return askUntilValid(a.in, a.out,
		prompt,
		func(s string) (string, error) {
			s = strings.TrimSpace(s)
			if _, err := time.Parse("2006-01-02", s); err != nil {
				return "", err
			}
			return s, nil
		},
		nil,
		"Invalid date format.")
}

func (a *App) filterError(err error) {
	fmt.Fprintf(a.out, "Filter error: %v\n", err)
	a.logger.Error("filter error", "error", err)
	a.metrics.QueryErrors.Inc()
}

// printSummary computes and renders the seven statistics for one city.
// The summary is lazy: a mid-sequence failure leaves the entries printed
// so far on screen, followed by the error.
func (a *App) printSummary(city string, view *dataset.Table, filterLabel string) {
	start := time.Now()
	fmt.Fprintf(a.out, "Temperature statistics for %s:\n", city)

	sum := a.engine.TemperatureSummary(city, view)
	for stat, ok := sum.Next(); ok; stat, ok = sum.Next() {
		fmt.Fprintf(a.out, "%s: %g\n", stat.Label, stat.Value)
	}
	if err := sum.Err(); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		a.logger.Error("summary failed", "city", city, "error", err)
		a.metrics.QueryErrors.Inc()
		return
	}

	a.metrics.QueriesTotal.WithLabelValues(filterLabel).Inc()
	a.metrics.SummaryDuration.Observe(time.Since(start).Seconds())
	a.logger.Debug("summary computed", "city", city, "filter", filterLabel)
}

// askUntilValid prompts until the input parses and passes the optional
// validator, echoing errMsg on each failure. Returns ok=false when input
// is exhausted.
func askUntilValid[T any](in *bufio.Scanner, out io.Writer, prompt string,
	parse func(string) (T, error), valid func(T) bool, errMsg string) (T, bool) {
	var zero T
	for {
		fmt.Fprint(out, prompt)
		if !in.Scan() {
			return zero, false
		}
		val, err := parse(in.Text())
		if err != nil {
			fmt.Fprintln(out, errMsg)
			continue
		}
		if valid != nil && !valid(val) {
			fmt.Fprintln(out, errMsg)
			continue
		}
		return val, true
	}
}
