// Package montecarlo implements single-loop Monte Carlo estimators:
// the unit-circle estimate of pi, the birthday-collision probability,
// sample-mean estimation, and central-limit-theorem sampling.
package montecarlo

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// EstimatePi estimates pi by sampling n points uniformly on [-1,1]² and
// counting the fraction inside the unit circle.
func EstimatePi(n int, rng *rand.Rand) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("sample count must be at least 1, got %d", n)
	}

	inside := 0
	for i := 0; i < n; i++ {
		x := 2*rng.Float64() - 1
		y := 2*rng.Float64() - 1
		if x*x+y*y <= 1.0 {
			inside++
		}
	}
	return 4.0 * float64(inside) / float64(n), nil
}

// BirthdayProbability estimates the probability that at least two people
// in a group of the given size share a birthday, over the given number of
// simulated groups. Birthdays are uniform over 365 days.
func BirthdayProbability(groupSize, runs int, rng *rand.Rand) (float64, error) {
	if groupSize < 1 {
		return 0, fmt.Errorf("group size must be at least 1, got %d", groupSize)
	}
	if runs < 1 {
		return 0, fmt.Errorf("run count must be at least 1, got %d", runs)
	}

	collisions := 0
	seen := make([]bool, 365)
	for r := 0; r < runs; r++ {
		for i := range seen {
			seen[i] = false
		}
		for i := 0; i < groupSize; i++ {
			day := rng.Intn(365)
			if seen[day] {
				collisions++
				break
			}
			seen[day] = true
		}
	}
	return float64(collisions) / float64(runs), nil
}

// ExponentialMean estimates the mean of an exponential distribution with
// the given rate from n samples. The estimate converges to 1/rate.
func ExponentialMean(rate float64, n int, rng *rand.Rand) (float64, error) {
	if !(rate > 0) {
		return 0, fmt.Errorf("rate must be positive, got %v", rate)
	}
	if n < 1 {
		return 0, fmt.Errorf("sample count must be at least 1, got %d", n)
	}

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = rng.ExpFloat64() / rate
	}
	return stat.Mean(samples, nil), nil
}

// CLTSample draws `runs` realizations of the normalized sample mean
// sqrt(n) * (x̄ - mean) / sd for a caller-supplied base distribution.
// By the central limit theorem the realizations converge in distribution
// to N(0, 1) as n grows.
func CLTSample(dist func(*rand.Rand) float64, mean, sd float64, n, runs int, rng *rand.Rand) ([]float64, error) {
	if dist == nil {
		return nil, fmt.Errorf("base distribution is nil")
	}
	if !(sd > 0) {
		return nil, fmt.Errorf("standard deviation must be positive, got %v", sd)
	}
	if n < 1 || runs < 1 {
		return nil, fmt.Errorf("n and runs must be at least 1, got n=%d runs=%d", n, runs)
	}

	out := make([]float64, runs)
	scale := math.Sqrt(float64(n))
	for r := 0; r < runs; r++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += dist(rng)
		}
		sampleMean := sum / float64(n)
		out[r] = scale * (sampleMean - mean) / sd
	}
	return out, nil
}
