// Command validate performs offline integrity checks on a weather CSV:
// it loads the file through the real loader, verifies city derivation and
// the per-city column convention, checks the temporal index, and computes
// every city's temperature summary. It prints a phased pass/fail report
// and exits nonzero on failure.
//
// Usage:
//
//	go run ./cmd/validate -csv data/weather.csv
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/DylanCEdwards/weather-app/internal/dataset"
	"github.com/DylanCEdwards/weather-app/internal/loader"
	"github.com/DylanCEdwards/weather-app/internal/stats"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func (p *phase) report() {
	if p.passed() {
		fmt.Printf("PASS  %s\n", p.name)
		return
	}
	fmt.Printf("FAIL  %s\n", p.name)
	for _, e := range p.errors {
		fmt.Printf("      - %s\n", e)
	}
}

func main() {
	csvPath := flag.String("csv", "", "path to the weather CSV to validate")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(*csvPath))
}

func run(csvPath string) int {
	fmt.Println("=== Weather Dataset Integrity Validation ===")
	fmt.Println()

	ds, err := loader.New(csvPath, slog.Default()).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load dataset: %v\n", err)
		return 1
	}

	phases := []*phase{
		checkCities(ds),
		checkIndex(ds),
		checkSummaries(ds),
	}

	failed := false
	for _, p := range phases {
		p.report()
		if !p.passed() {
			failed = true
		}
	}

	fmt.Println()
	if failed {
		fmt.Println("Result: FAIL")
		return 1
	}
	fmt.Printf("Result: PASS (%d rows, %d cities)\n", ds.NumRows(), len(ds.Cities()))
	return 0
}

// checkCities verifies that cities were derived and that each one has its
// mean-temperature column, the one every summary targets.
func checkCities(ds *dataset.Dataset) *phase {
	p := &phase{name: "city derivation"}

	cities := ds.Cities()
	if len(cities) == 0 {
		p.errorf("no cities derived from column names")
		return p
	}
	for _, city := range cities {
		column := city + "_temp_mean"
		if !ds.HasColumn(column) {
			p.errorf("city %s is missing column %s", city, column)
		}
	}
	return p
}

// checkIndex verifies the temporal index is chronological. The dataset
// never re-sorts, so an unsorted source makes ordering-dependent queries
// follow file order; that is worth surfacing before anyone relies on it.
func checkIndex(ds *dataset.Dataset) *phase {
	p := &phase{name: "temporal index"}

	dates := ds.Table().Dates()
	if len(dates) == 0 {
		p.errorf("dataset has no rows")
		return p
	}
	for i := 1; i < len(dates); i++ {
		if dates[i].Before(dates[i-1]) {
			p.errorf("index not chronological at row %d: %s follows %s",
				i, dates[i].Format("2006-01-02"), dates[i-1].Format("2006-01-02"))
			return p
		}
	}
	return p
}

// checkSummaries computes the full seven-statistic summary for every city
// and flags failures or non-finite results.
func checkSummaries(ds *dataset.Dataset) *phase {
	p := &phase{name: "temperature summaries"}
	engine := stats.New(ds)

	for _, city := range ds.Cities() {
		sum := engine.TemperatureSummary(city, nil)
		for stat, ok := sum.Next(); ok; stat, ok = sum.Next() {
			if math.IsNaN(stat.Value) || math.IsInf(stat.Value, 0) {
				p.errorf("%s: %s is not finite", city, stat.Label)
			}
		}
		if err := sum.Err(); err != nil {
			p.errorf("%s: %v", city, err)
		}
	}
	return p
}
