package stats

import "github.com/DylanCEdwards/weather-app/internal/dataset"

// Stat is one labeled entry of a temperature summary.
type Stat struct {
	Label string
	Value float64
}

// summarySteps fixes the order and labels of a temperature summary.
var summarySteps = []struct {
	label string
	fn    func(*Engine, string, *dataset.Table) (float64, error)
}{
	{"Mean", (*Engine).Mean},
	{"Median", (*Engine).Median},
	{"Min", (*Engine).Min},
	{"Max", (*Engine).Max},
	{"Standard deviation", (*Engine).StdDev},
	{"Range", (*Engine).Range},
	{"Mode", (*Engine).Mode},
}

// Summary is a lazy, one-shot iterator over the seven statistics of a
// city's mean-temperature column. Each entry is computed when Next is
// called, in the fixed order Mean, Median, Min, Max, Standard deviation,
// Range, Mode. Usage follows the scanner pattern:
//
//	sum := engine.TemperatureSummary("UT", nil)
//	for stat, ok := sum.Next(); ok; stat, ok = sum.Next() {
//		fmt.Printf("%s: %v\n", stat.Label, stat.Value)
//	}
//	if err := sum.Err(); err != nil { ... }
//
// A validation failure stops iteration at the entry where it occurs;
// entries already produced stand, and Err reports the failure. The
// iterator is not restartable.
type Summary struct {
	engine *Engine
	column string
	view   *dataset.Table
	step   int
	err    error
}

// TemperatureSummary starts a summary for the column {city}_temp_mean.
// Nothing is computed or validated until the first Next call: a summary
// for a missing column is created successfully and fails on iteration.
func (e *Engine) TemperatureSummary(city string, view *dataset.Table) *Summary {
	return &Summary{
		engine: e,
		column: city + "_temp_mean",
		view:   view,
	}
}

// Next computes and returns the next statistic. It returns ok=false once
// the summary is exhausted or a statistic fails; Err distinguishes the
// two.
func (s *Summary) Next() (Stat, bool) {
	if s.err != nil || s.step >= len(summarySteps) {
		return Stat{}, false
	}
	step := summarySteps[s.step]
	s.step++

	value, err := step.fn(s.engine, s.column, s.view)
	if err != nil {
		s.err = err
		return Stat{}, false
	}
	return Stat{Label: step.label, Value: value}, true
}

// Err returns the failure that stopped iteration, or nil after a complete
// pass.
func (s *Summary) Err() error {
	return s.err
}
