// Package queue implements discrete-event queueing simulations: a future
// event set ordered by event time, a processor-sharing single queue, and
// an on-off fluid buffer model.
package queue

import (
	"container/heap"
	"fmt"
)

// EventKind distinguishes the two event types of the queueing loop.
type EventKind int

const (
	// Arrival marks a customer entering the system.
	Arrival EventKind = iota
	// Departure marks a customer completing service.
	Departure
)

func (k EventKind) String() string {
	if k == Arrival {
		return "ARRIVAL"
	}
	return "DEPARTURE"
}

// Customer carries the arrival time needed to compute sojourn times.
type Customer struct {
	ArrivalTime float64
}

// Event is a scheduled simulation event.
type Event struct {
	Kind     EventKind
	Time     float64
	Customer *Customer
}

func (e *Event) String() string {
	return fmt.Sprintf("%s@%.4f", e.Kind, e.Time)
}

// eventHeap orders events by time for container/heap.
type eventHeap []*Event

func (h eventHeap) Len() int            { return len(h) }
func (h eventHeap) Less(i, j int) bool  { return h[i].Time < h[j].Time }
func (h eventHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) { *h = append(*h, x.(*Event)) }
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// FES is a future event set: a min-heap of events keyed on event time.
type FES struct {
	heap eventHeap
}

// NewFES creates an empty future event set.
func NewFES() *FES {
	return &FES{}
}

// Add schedules an event.
func (f *FES) Add(e *Event) {
	heap.Push(&f.heap, e)
}

// Next removes and returns the earliest event, or nil if the set is empty.
func (f *FES) Next() *Event {
	if len(f.heap) == 0 {
		return nil
	}
	return heap.Pop(&f.heap).(*Event)
}

// Peek returns the earliest event without removing it, or nil if empty.
func (f *FES) Peek() *Event {
	if len(f.heap) == 0 {
		return nil
	}
	return f.heap[0]
}

// Len returns the number of scheduled events.
func (f *FES) Len() int {
	return len(f.heap)
}

// RescaleDepartures stretches or shrinks the remaining time of every
// scheduled departure when the queue length changes from oldQL to newQL
// under processor sharing: each customer's service share moves from
// 1/oldQL to 1/newQL, so remaining departure delays scale by newQL/oldQL.
// Arrival events are not affected. No-op when either length is zero or
// the lengths are equal.
func (f *FES) RescaleDepartures(now float64, oldQL, newQL int) {
	if oldQL <= 0 || newQL <= 0 || oldQL == newQL {
		return
	}
	factor := float64(newQL) / float64(oldQL)

	for _, e := range f.heap {
		if e.Kind != Departure {
			continue
		}
		remaining := e.Time - now
		if remaining < 0 {
			remaining = 0
		}
		e.Time = now + factor*remaining
	}
	heap.Init(&f.heap)
}
