package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// RunSummary aggregates one scalar outcome (arrival count, final value,
// endpoint position) across repeated simulation runs.
type RunSummary struct {
	name   string
	values []float64
}

// NewRunSummary creates an empty summary for the named outcome.
func NewRunSummary(name string) *RunSummary {
	return &RunSummary{name: name}
}

// Record appends one run's outcome.
func (s *RunSummary) Record(v float64) {
	s.values = append(s.values, v)
}

// Count returns the number of recorded runs.
func (s *RunSummary) Count() int {
	return len(s.values)
}

// Mean returns the sample mean of the recorded outcomes, or 0 when empty.
func (s *RunSummary) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return stat.Mean(s.values, nil)
}

// StdDev returns the sample standard deviation, or 0 with fewer than two runs.
func (s *RunSummary) StdDev() float64 {
	if len(s.values) < 2 {
		return 0
	}
	return stat.StdDev(s.values, nil)
}

// Print writes the summary block to stdout.
func (s *RunSummary) Print() {
	fmt.Printf("=== %s ===\n", s.name)
	fmt.Printf("Runs                 : %d\n", s.Count())
	fmt.Printf("Mean                 : %.4f\n", s.Mean())
	fmt.Printf("Std Dev              : %.4f\n", s.StdDev())
}
