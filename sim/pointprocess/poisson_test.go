package pointprocess

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

func TestHomogeneous_StrictlyIncreasingWithinHorizon(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cases := []struct {
		rate    float64
		horizon float64
	}{
		{1.0, 10.0},
		{2.0, 100.0},
		{0.1, 50.0},
		{25.0, 3.0},
	}

	for _, tc := range cases {
		arrivals, err := Homogeneous(tc.rate, tc.horizon, rng)
		if err != nil {
			t.Fatalf("Homogeneous(%v, %v): %v", tc.rate, tc.horizon, err)
		}
		prev := 0.0
		for i, a := range arrivals {
			if a <= prev {
				t.Errorf("rate=%v horizon=%v: arrival %d = %v not greater than %v", tc.rate, tc.horizon, i, a, prev)
				break
			}
			if a > tc.horizon {
				t.Errorf("rate=%v horizon=%v: arrival %d = %v exceeds horizon", tc.rate, tc.horizon, i, a)
				break
			}
			prev = a
		}
	}
}

func TestHomogeneous_DeterministicGivenSeed(t *testing.T) {
	// GIVEN two engines reset to the same seed
	rng1 := rand.New(rand.NewSource(7))
	rng2 := rand.New(rand.NewSource(7))

	// WHEN the same simulation is run against each
	a1, err1 := Homogeneous(1.5, 30.0, rng1)
	a2, err2 := Homogeneous(1.5, 30.0, rng2)

	// THEN the sequences are identical
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if len(a1) != len(a2) {
		t.Fatalf("lengths differ: %d vs %d", len(a1), len(a2))
	}
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Errorf("arrival %d: %v != %v", i, a1[i], a2[i])
		}
	}
}

func TestHomogeneous_MeanCountMatchesRateTimesHorizon(t *testing.T) {
	// GIVEN rate=2, horizon=100 (expected count 200 per run)
	rng := rand.New(rand.NewSource(42))
	runs := 300
	counts := make([]float64, runs)

	// WHEN many independent runs share one continuing stream
	for i := 0; i < runs; i++ {
		arrivals, err := Homogeneous(2.0, 100.0, rng)
		if err != nil {
			t.Fatal(err)
		}
		counts[i] = float64(len(arrivals))
	}

	// THEN the sample mean converges to 200 (within 3%)
	mean := stat.Mean(counts, nil)
	if math.Abs(mean-200)/200 > 0.03 {
		t.Errorf("mean count = %.1f, want ≈ 200 (within 3%%)", mean)
	}
}

func TestHomogeneous_ZeroHorizonYieldsEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	arrivals, err := Homogeneous(5.0, 0.0, rng)
	if err != nil {
		t.Fatal(err)
	}
	if len(arrivals) != 0 {
		t.Errorf("got %d arrivals for horizon 0, want 0", len(arrivals))
	}
}

func TestHomogeneous_RejectsInvalidParameters(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, rate := range []float64{0, -1, math.NaN()} {
		_, err := Homogeneous(rate, 10.0, rng)
		assert.ErrorIs(t, err, ErrInvalidParameter, "rate=%v", rate)
	}

	_, err := Homogeneous(1.0, -1.0, rng)
	assert.ErrorIs(t, err, ErrInvalidParameter, "negative horizon")
	_, err = Homogeneous(1.0, math.NaN(), rng)
	assert.ErrorIs(t, err, ErrInvalidParameter, "NaN horizon")
}

func TestThinned_ConstantIntensityAtBoundEqualsHomogeneous(t *testing.T) {
	// GIVEN intensity(t) = bound everywhere (every candidate accepted)
	bound := 3.0
	flat := func(float64) float64 { return bound }

	// WHEN thinning and plain generation run from the same seed
	want, err := Homogeneous(bound, 20.0, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Thinned(flat, bound, 20.0, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatal(err)
	}

	// THEN the accepted stream equals the homogeneous stream
	if len(got) != len(want) {
		t.Fatalf("lengths differ: %d vs %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("arrival %d: %v != %v", i, got[i], want[i])
		}
	}
}

func TestThinned_ZeroIntensityYieldsEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	arrivals, err := Thinned(func(float64) float64 { return 0 }, 4.0, 50.0, rng)
	if err != nil {
		t.Fatal(err)
	}
	if len(arrivals) != 0 {
		t.Errorf("got %d arrivals for zero intensity, want 0", len(arrivals))
	}
}

func TestThinned_PreservesOrderAndHorizon(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	osc := func(tm float64) float64 { return 2.0 + 2.0*math.Sin(0.1*math.Pi*tm) }
	arrivals, err := Thinned(osc, 4.0, 10.0, rng)
	if err != nil {
		t.Fatal(err)
	}
	prev := 0.0
	for i, a := range arrivals {
		if a <= prev || a > 10.0 {
			t.Errorf("arrival %d = %v out of order or beyond horizon", i, a)
			break
		}
		prev = a
	}
}

func TestThinned_MeanCountMatchesIntensityIntegral(t *testing.T) {
	// GIVEN intensity 2 + 2sin(0.1πt) on [0, 20]: one full period, integral = 40
	rng := rand.New(rand.NewSource(42))
	osc := func(tm float64) float64 { return 2.0 + 2.0*math.Sin(0.1*math.Pi*tm) }

	runs := 300
	counts := make([]float64, runs)
	for i := 0; i < runs; i++ {
		arrivals, err := Thinned(osc, 4.0, 20.0, rng)
		if err != nil {
			t.Fatal(err)
		}
		counts[i] = float64(len(arrivals))
	}

	mean := stat.Mean(counts, nil)
	if math.Abs(mean-40)/40 > 0.05 {
		t.Errorf("mean count = %.1f, want ≈ 40 (within 5%%)", mean)
	}
}

func TestThinned_RejectsBoundViolations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	_, err := Thinned(func(float64) float64 { return -0.5 }, 4.0, 50.0, rng)
	assert.ErrorIs(t, err, ErrInvalidParameter, "negative intensity")

	_, err = Thinned(func(float64) float64 { return 10.0 }, 4.0, 50.0, rng)
	assert.ErrorIs(t, err, ErrInvalidParameter, "intensity above dominating rate")

	_, err = Thinned(nil, 4.0, 50.0, rng)
	assert.ErrorIs(t, err, ErrInvalidParameter, "nil intensity")

	_, err = Thinned(func(float64) float64 { return 1.0 }, 0, 50.0, rng)
	assert.ErrorIs(t, err, ErrInvalidParameter, "zero dominating rate")
}

func TestAccumulate_RunningSumOverFixedArrivals(t *testing.T) {
	// GIVEN a mocked arrival sequence and a scripted jump sequence
	arrivals := []float64{1.0, 3.0, 7.0}
	jumps := []float64{1, -1, 2}
	i := 0
	scripted := func(*rand.Rand) float64 {
		j := jumps[i]
		i++
		return j
	}

	// WHEN the path is accumulated
	path := Accumulate(arrivals, nil, scripted)

	// THEN each point carries the running sum at its arrival time
	want := []PathPoint{{1.0, 1}, {3.0, 0}, {7.0, 2}}
	assert.Equal(t, want, path)
}

func TestCompound_PathLengthMatchesArrivalCount(t *testing.T) {
	rngArrivals := rand.New(rand.NewSource(11))
	arrivals, err := Homogeneous(1.0, 25.0, rngArrivals)
	if err != nil {
		t.Fatal(err)
	}

	rngPath := rand.New(rand.NewSource(11))
	path, err := Compound(1.0, 25.0, rngPath, func(r *rand.Rand) float64 { return r.Float64() })
	if err != nil {
		t.Fatal(err)
	}

	if len(path) != len(arrivals) {
		t.Fatalf("path has %d points, underlying process has %d arrivals", len(path), len(arrivals))
	}
	for i := range path {
		if path[i].Time != arrivals[i] {
			t.Errorf("point %d: time %v != arrival %v", i, path[i].Time, arrivals[i])
		}
	}
}

func TestCompound_FinalValueMeanMatchesTheory(t *testing.T) {
	// GIVEN rate=2, horizon=50, uniform [0,1) jumps: E[Y(T)] = 2*50*0.5 = 50
	rng := rand.New(rand.NewSource(42))
	uniformJump := func(r *rand.Rand) float64 { return r.Float64() }

	runs := 300
	finals := make([]float64, 0, runs)
	for i := 0; i < runs; i++ {
		path, err := Compound(2.0, 50.0, rng, uniformJump)
		if err != nil {
			t.Fatal(err)
		}
		if v, ok := FinalValue(path); ok {
			finals = append(finals, v)
		}
	}

	mean := stat.Mean(finals, nil)
	if math.Abs(mean-50)/50 > 0.05 {
		t.Errorf("mean final value = %.2f, want ≈ 50 (within 5%%)", mean)
	}
}

func TestCompound_EmptyPathHandling(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	path, err := Compound(1.0, 0.0, rng, func(r *rand.Rand) float64 { return 1.0 })
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 0 {
		t.Fatalf("got %d points for horizon 0, want 0", len(path))
	}
	if _, ok := FinalValue(path); ok {
		t.Error("FinalValue reported a value for an empty path")
	}
}

func TestCompound_RejectsNilJumpSampler(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	_, err := Compound(1.0, 10.0, rng, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
