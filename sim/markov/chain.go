// Package markov simulates finite-state discrete-time Markov chains.
package markov

import (
	"fmt"
	"math/rand"
	"sort"
)

// Chain is a validated finite-state Markov chain. Transition sampling uses
// a precomputed cumulative distribution per row, drawn via inverse CDF.
type Chain struct {
	cdf [][]float64 // per-state cumulative transition probabilities
}

// NewChain builds a Chain from a transition matrix, where p[i][j] is the
// probability of moving from state i to state j. The matrix must be square
// with non-negative entries, and every row must have positive mass. Rows
// are normalized automatically if they do not sum to 1.0.
func NewChain(p [][]float64) (*Chain, error) {
	n := len(p)
	if n == 0 {
		return nil, fmt.Errorf("transition matrix is empty")
	}

	cdf := make([][]float64, n)
	for i, row := range p {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d (matrix must be square)", i, len(row), n)
		}
		total := 0.0
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("p[%d][%d] = %v is negative", i, j, v)
			}
			total += v
		}
		if total <= 0 {
			return nil, fmt.Errorf("row %d has no positive mass", i)
		}

		rowCDF := make([]float64, n)
		cumulative := 0.0
		for j, v := range row {
			cumulative += v / total
			rowCDF[j] = cumulative
		}
		// Ensure the last entry is exactly 1.0
		rowCDF[n-1] = 1.0
		cdf[i] = rowCDF
	}
	return &Chain{cdf: cdf}, nil
}

// States returns the number of states in the chain.
func (c *Chain) States() int {
	return len(c.cdf)
}

// Step samples the successor of the given state.
func (c *Chain) Step(state int, rng *rand.Rand) (int, error) {
	if state < 0 || state >= len(c.cdf) {
		return 0, fmt.Errorf("state %d out of range [0, %d)", state, len(c.cdf))
	}
	u := rng.Float64()
	next := sort.SearchFloat64s(c.cdf[state], u)
	if next >= len(c.cdf) {
		next = len(c.cdf) - 1
	}
	return next, nil
}

// Simulate runs the chain for the given number of steps starting from
// start, returning the full state sequence including the initial state
// (steps+1 entries).
func (c *Chain) Simulate(start, steps int, rng *rand.Rand) ([]int, error) {
	if start < 0 || start >= len(c.cdf) {
		return nil, fmt.Errorf("start state %d out of range [0, %d)", start, len(c.cdf))
	}
	if steps < 0 {
		return nil, fmt.Errorf("steps must be non-negative, got %d", steps)
	}

	states := make([]int, steps+1)
	states[0] = start
	for i := 1; i <= steps; i++ {
		next, err := c.Step(states[i-1], rng)
		if err != nil {
			return nil, err
		}
		states[i] = next
	}
	return states, nil
}
