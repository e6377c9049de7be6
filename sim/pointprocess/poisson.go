// Package pointprocess simulates Poisson point processes: homogeneous
// arrival streams from i.i.d. exponential gaps, non-homogeneous streams
// via thinning, and compound (marked) processes accumulating i.i.d. jumps.
//
// Every generator takes an explicit *rand.Rand handle. The handle is a
// single mutable stream: sequential calls within one session continue the
// stream, and resetting the seed replays the session bit-for-bit. Handles
// must never be copied and must not be shared across goroutines.
package pointprocess

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidParameter reports a generator call rejected at its boundary:
// a non-positive rate, a negative horizon, or an intensity function
// observed outside its declared range. No output is produced on rejection.
var ErrInvalidParameter = errors.New("invalid parameter")

// Intensity maps elapsed time to a non-negative instantaneous rate.
// It must satisfy intensity(t) <= bound for all t in [0, horizon] when
// passed to Thinned together with that bound.
type Intensity func(t float64) float64

// JumpSampler draws one jump size. It may consume draws from the shared
// stream; it is called exactly once per arrival, in chronological order.
type JumpSampler func(rng *rand.Rand) float64

// PathPoint is one step of a compound process path: the running sum of
// all jumps drawn at arrivals up to and including Time.
type PathPoint struct {
	Time  float64
	Value float64
}

// Homogeneous generates the arrival times of a constant-rate Poisson
// process on [0, horizon] by summing i.i.d. exponential gaps with mean
// 1/rate. The returned sequence is strictly increasing, every element is
// <= horizon, and generation stops at the first time exceeding horizon
// (that time is not included).
//
// rate must be strictly positive: rate == 0 is rejected rather than
// treated as an empty process. horizon == 0 yields an empty sequence.
func Homogeneous(rate, horizon float64, rng *rand.Rand) ([]float64, error) {
	if !(rate > 0) {
		return nil, fmt.Errorf("%w: rate must be positive, got %v", ErrInvalidParameter, rate)
	}
	if !(horizon >= 0) {
		return nil, fmt.Errorf("%w: horizon must be non-negative, got %v", ErrInvalidParameter, horizon)
	}

	var arrivals []float64
	t := 0.0
	for {
		t += rng.ExpFloat64() / rate
		if t > horizon {
			break
		}
		arrivals = append(arrivals, t)
	}
	return arrivals, nil
}

// Thinned generates the arrival times of a non-homogeneous Poisson process
// with the given intensity function, using acceptance-rejection (thinning):
// a homogeneous candidate stream is generated at the dominating rate
// `bound`, and each candidate t is kept with probability intensity(t)/bound.
// Filtering preserves chronological order, so the result is strictly
// increasing with every element <= horizon.
//
// The caller must guarantee intensity(t) <= bound on [0, horizon]. A
// violation observed at any candidate, or a negative intensity value, is
// rejected with ErrInvalidParameter instead of silently biasing the output.
func Thinned(intensity Intensity, bound, horizon float64, rng *rand.Rand) ([]float64, error) {
	if intensity == nil {
		return nil, fmt.Errorf("%w: intensity function is nil", ErrInvalidParameter)
	}
	if !(bound > 0) {
		return nil, fmt.Errorf("%w: dominating rate must be positive, got %v", ErrInvalidParameter, bound)
	}

	candidates, err := Homogeneous(bound, horizon, rng)
	if err != nil {
		return nil, err
	}

	var accepted []float64
	for _, t := range candidates {
		lambda := intensity(t)
		if lambda < 0 {
			return nil, fmt.Errorf("%w: intensity(%v) = %v is negative", ErrInvalidParameter, t, lambda)
		}
		if lambda > bound {
			return nil, fmt.Errorf("%w: intensity(%v) = %v exceeds dominating rate %v", ErrInvalidParameter, t, lambda, bound)
		}
		if rng.Float64() < lambda/bound {
			accepted = append(accepted, t)
		}
	}
	return accepted, nil
}

// Compound generates a compound Poisson process path on [0, horizon]:
// arrival times of a homogeneous process at the given rate, each carrying
// an i.i.d. jump drawn from jump, with Value holding the running sum.
// With no arrivals before the horizon the path is empty; use FinalValue
// to read the terminal value safely.
func Compound(rate, horizon float64, rng *rand.Rand, jump JumpSampler) ([]PathPoint, error) {
	if jump == nil {
		return nil, fmt.Errorf("%w: jump sampler is nil", ErrInvalidParameter)
	}

	arrivals, err := Homogeneous(rate, horizon, rng)
	if err != nil {
		return nil, err
	}
	return Accumulate(arrivals, rng, jump), nil
}

// Accumulate folds one jump per arrival into a cumulative path. The time
// components of the result are the arrivals unchanged; Value at index i is
// the sum of the first i+1 jumps. jump is called once per arrival, in
// chronological order, against the shared stream.
func Accumulate(arrivals []float64, rng *rand.Rand, jump JumpSampler) []PathPoint {
	var path []PathPoint
	total := 0.0
	for _, t := range arrivals {
		total += jump(rng)
		path = append(path, PathPoint{Time: t, Value: total})
	}
	return path
}

// FinalValue returns the cumulative value at the last arrival of a
// compound path. The second return is false when the path is empty.
func FinalValue(path []PathPoint) (float64, bool) {
	if len(path) == 0 {
		return 0, false
	}
	return path[len(path)-1].Value, true
}
