package queue

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// Sampler draws one positive duration (inter-arrival gap or base service
// requirement) from the shared stream.
type Sampler func(rng *rand.Rand) float64

// Results collects time-weighted queue length and per-customer sojourn
// times for a queueing run.
type Results struct {
	lastTime     float64
	weightedQL   float64
	sojournTimes []float64
}

// RecordQueueLength accumulates queue-length area up to the given time.
func (r *Results) RecordQueueLength(now float64, ql int) {
	dt := now - r.lastTime
	if dt < 0 {
		dt = 0
	}
	r.weightedQL += float64(ql) * dt
	r.lastTime = now
}

// RecordSojourn registers a completed customer's time in system.
func (r *Results) RecordSojourn(s float64) {
	r.sojournTimes = append(r.sojournTimes, s)
}

// MeanQueueLength returns the time-weighted average queue length.
func (r *Results) MeanQueueLength() float64 {
	if r.lastTime == 0 {
		return 0
	}
	return r.weightedQL / r.lastTime
}

// MeanSojournTime returns the average sojourn time of completed customers.
func (r *Results) MeanSojournTime() float64 {
	if len(r.sojournTimes) == 0 {
		return 0
	}
	return stat.Mean(r.sojournTimes, nil)
}

// Completed returns the number of customers that left the system.
func (r *Results) Completed() int {
	return len(r.sojournTimes)
}

// ProcessorSharing simulates a single queue under processor sharing:
// all present customers are served simultaneously, each receiving an
// equal share of the server. A customer with base requirement X and QL
// concurrent customers therefore needs X*QL wall-clock time, and every
// queue-length change rescales the pending departures.
type ProcessorSharing struct {
	Interarrival Sampler
	Service      Sampler
}

// Simulate runs the queue until the horizon and returns the collected
// results. Arrival and service draws interleave on the shared stream in
// event order, so a fixed seed reproduces the run exactly.
func (ps ProcessorSharing) Simulate(horizon float64, rng *rand.Rand) (*Results, error) {
	if ps.Interarrival == nil || ps.Service == nil {
		return nil, fmt.Errorf("interarrival and service samplers must both be set")
	}
	if !(horizon >= 0) {
		return nil, fmt.Errorf("horizon must be non-negative, got %v", horizon)
	}

	fes := NewFES()
	res := &Results{}
	var queue []*Customer
	t := 0.0

	first := &Customer{ArrivalTime: ps.Interarrival(rng)}
	fes.Add(&Event{Kind: Arrival, Time: first.ArrivalTime, Customer: first})

	for t < horizon {
		e := fes.Next()
		if e == nil {
			break
		}
		t = e.Time
		if t > horizon {
			break
		}
		oldQL := len(queue)
		res.RecordQueueLength(t, oldQL)

		switch e.Kind {
		case Arrival:
			queue = append(queue, e.Customer)

			// Queue grew: everyone's share shrank, departures move out.
			fes.RescaleDepartures(t, oldQL, oldQL+1)

			base := ps.Service(rng)
			fes.Add(&Event{
				Kind:     Departure,
				Time:     t + base*float64(oldQL+1),
				Customer: e.Customer,
			})

			next := &Customer{ArrivalTime: t + ps.Interarrival(rng)}
			fes.Add(&Event{Kind: Arrival, Time: next.ArrivalTime, Customer: next})

		case Departure:
			res.RecordSojourn(t - e.Customer.ArrivalTime)
			for i, c := range queue {
				if c == e.Customer {
					queue = append(queue[:i], queue[i+1:]...)
					break
				}
			}

			// Queue shrank: the remaining customers speed up.
			fes.RescaleDepartures(t, oldQL, oldQL-1)
		}
	}

	return res, nil
}
