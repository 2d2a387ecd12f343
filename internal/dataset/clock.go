package dataset

import "github.com/jonboulle/clockwork"

// clock is a package-level time source so tests and fixture generators can
// freeze the LoadedAt timestamp via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source used at construction. Pass nil to reset
// to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
