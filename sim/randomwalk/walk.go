// Package randomwalk simulates simple one-dimensional random walks.
package randomwalk

import (
	"fmt"
	"math/rand"
)

// Walk simulates a random walk with probability p of stepping +1 and
// probability 1-p of stepping -1. It returns the positions s_0..s_n with
// s_0 = 0, so the result always has steps+1 entries.
func Walk(p float64, steps int, rng *rand.Rand) ([]int, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("step probability must be in [0, 1], got %v", p)
	}
	if steps < 0 {
		return nil, fmt.Errorf("steps must be non-negative, got %d", steps)
	}

	positions := make([]int, steps+1)
	for i := 1; i <= steps; i++ {
		step := -1
		if rng.Float64() < p {
			step = +1
		}
		positions[i] = positions[i-1] + step
	}
	return positions, nil
}
