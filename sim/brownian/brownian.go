// Package brownian simulates standard Brownian motion on a uniform time
// grid by accumulating independent Gaussian increments.
package brownian

import (
	"fmt"
	"math"
	"math/rand"
)

// Path1D simulates B(t) for t in [0, T] using the given number of steps.
// It returns the grid times and the corresponding values, both of length
// steps+1, with B(0) = 0. Increments are N(0, dt) with dt = T/steps.
func Path1D(T float64, steps int, rng *rand.Rand) (times, values []float64, err error) {
	if !(T > 0) {
		return nil, nil, fmt.Errorf("time horizon must be positive, got %v", T)
	}
	if steps < 1 {
		return nil, nil, fmt.Errorf("steps must be at least 1, got %d", steps)
	}

	dt := T / float64(steps)
	sd := math.Sqrt(dt)

	times = make([]float64, steps+1)
	values = make([]float64, steps+1)
	for i := 1; i <= steps; i++ {
		times[i] = float64(i) * dt
		values[i] = values[i-1] + rng.NormFloat64()*sd
	}
	return times, values, nil
}

// Path2D simulates a planar Brownian motion (X(t), Y(t)) on [0, T]: two
// independent one-dimensional motions over the same grid, drawn from the
// same stream (X increment before Y increment at each step).
func Path2D(T float64, steps int, rng *rand.Rand) (times, xs, ys []float64, err error) {
	if !(T > 0) {
		return nil, nil, nil, fmt.Errorf("time horizon must be positive, got %v", T)
	}
	if steps < 1 {
		return nil, nil, nil, fmt.Errorf("steps must be at least 1, got %d", steps)
	}

	dt := T / float64(steps)
	sd := math.Sqrt(dt)

	times = make([]float64, steps+1)
	xs = make([]float64, steps+1)
	ys = make([]float64, steps+1)
	for i := 1; i <= steps; i++ {
		times[i] = float64(i) * dt
		xs[i] = xs[i-1] + rng.NormFloat64()*sd
		ys[i] = ys[i-1] + rng.NormFloat64()*sd
	}
	return times, xs, ys, nil
}
