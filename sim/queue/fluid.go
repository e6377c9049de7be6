package queue

import (
	"fmt"
	"math"
	"math/rand"
)

// FluidConfig parameterizes the two-machine on-off fluid buffer model:
// machine 1 produces into a finite buffer at rate ProduceRate while up,
// fails at rate FailureRate and is repaired at rate RepairRate; machine 2
// drains the buffer at rate ConsumeRate and idles when it runs dry.
type FluidConfig struct {
	FailureRate float64 // 1 / mean uptime of machine 1
	RepairRate  float64 // 1 / mean downtime of machine 1
	ProduceRate float64 // production rate of machine 1 while up
	ConsumeRate float64 // consumption rate of machine 2
	BufferSize  float64 // buffer capacity K
}

// FluidResult reports the outcome of a fluid buffer run.
type FluidResult struct {
	AvgProductionRate float64
	// Trace of (time, buffer level) at phase boundaries, populated only
	// when requested.
	Times  []float64
	Levels []float64
}

// Validate checks the configuration parameters.
func (c FluidConfig) Validate() error {
	if !(c.FailureRate > 0) || !(c.RepairRate > 0) {
		return fmt.Errorf("failure and repair rates must be positive, got %v and %v", c.FailureRate, c.RepairRate)
	}
	if !(c.ProduceRate > 0) || !(c.ConsumeRate > 0) {
		return fmt.Errorf("produce and consume rates must be positive, got %v and %v", c.ProduceRate, c.ConsumeRate)
	}
	if !(c.BufferSize >= 0) {
		return fmt.Errorf("buffer size must be non-negative, got %v", c.BufferSize)
	}
	return nil
}

// SimulateFluid runs the on-off buffer model for runLength time units and
// returns the time-averaged production rate of machine 2, accounting for
// the time machine 2 starves on an empty buffer. Up and down phases are
// exponential with the configured rates; the phase that would overrun the
// horizon is clipped to it.
func SimulateFluid(cfg FluidConfig, runLength float64, rng *rand.Rand, trace bool) (*FluidResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !(runLength > 0) {
		return nil, fmt.Errorf("run length must be positive, got %v", runLength)
	}

	res := &FluidResult{}
	t := 0.0     // current time
	b := 0.0     // buffer content
	empty := 0.0 // total time machine 2 was starved

	record := func() {
		if trace {
			res.Times = append(res.Times, t)
			res.Levels = append(res.Levels, b)
		}
	}

	for t < runLength {
		// Machine 1 up: buffer fills at the net rate, clamped at capacity.
		u := rng.ExpFloat64() / cfg.FailureRate
		u = math.Min(u, runLength-t)
		t += u
		b = math.Min(b+u*(cfg.ProduceRate-cfg.ConsumeRate), cfg.BufferSize)
		record()

		// Machine 1 down: machine 2 keeps draining.
		d := rng.ExpFloat64() / cfg.RepairRate
		d = math.Min(d, runLength-t)
		t += d
		b -= d * cfg.ConsumeRate
		if b < 0 {
			// The overdraft divided by the drain rate is starvation time.
			empty -= b / cfg.ConsumeRate
			b = 0
		}
		record()
	}

	res.AvgProductionRate = cfg.ConsumeRate * (1 - empty/t)
	return res, nil
}
