package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFES_PopsInTimeOrder(t *testing.T) {
	fes := NewFES()
	fes.Add(&Event{Kind: Arrival, Time: 3.0})
	fes.Add(&Event{Kind: Departure, Time: 1.0})
	fes.Add(&Event{Kind: Arrival, Time: 2.0})

	var times []float64
	for e := fes.Next(); e != nil; e = fes.Next() {
		times = append(times, e.Time)
	}
	assert.Equal(t, []float64{1.0, 2.0, 3.0}, times)
}

func TestFES_PeekDoesNotRemove(t *testing.T) {
	fes := NewFES()
	fes.Add(&Event{Kind: Arrival, Time: 5.0})

	if e := fes.Peek(); e == nil || e.Time != 5.0 {
		t.Fatalf("Peek = %v, want event at 5.0", e)
	}
	if fes.Len() != 1 {
		t.Errorf("Len = %d after Peek, want 1", fes.Len())
	}
}

func TestFES_EmptyReturnsNil(t *testing.T) {
	fes := NewFES()
	if fes.Next() != nil || fes.Peek() != nil {
		t.Error("empty FES should return nil from Next and Peek")
	}
}

func TestFES_RescaleDepartures_StretchesRemainingTime(t *testing.T) {
	// GIVEN a departure 4 time units away and an arrival at the same distance
	fes := NewFES()
	fes.Add(&Event{Kind: Departure, Time: 14.0})
	fes.Add(&Event{Kind: Arrival, Time: 14.0})

	// WHEN the queue grows from 1 to 2 at time 10
	fes.RescaleDepartures(10.0, 1, 2)

	// THEN the departure's remaining 4 units double; the arrival is untouched
	first := fes.Next()
	second := fes.Next()
	if first.Kind != Arrival || first.Time != 14.0 {
		t.Errorf("arrival moved: %v", first)
	}
	if second.Kind != Departure || second.Time != 18.0 {
		t.Errorf("departure = %v, want DEPARTURE@18.0", second)
	}
}

func TestFES_RescaleDepartures_ShrinksOnDeparture(t *testing.T) {
	fes := NewFES()
	fes.Add(&Event{Kind: Departure, Time: 16.0})

	// Queue drops from 2 to 1 at time 10: remaining 6 units halve
	fes.RescaleDepartures(10.0, 2, 1)

	e := fes.Next()
	if e.Time != 13.0 {
		t.Errorf("departure = %v, want DEPARTURE@13.0", e)
	}
}

func TestFES_RescaleDepartures_NoOpCases(t *testing.T) {
	fes := NewFES()
	fes.Add(&Event{Kind: Departure, Time: 16.0})

	fes.RescaleDepartures(10.0, 0, 1) // empty before
	fes.RescaleDepartures(10.0, 1, 0) // empty after
	fes.RescaleDepartures(10.0, 2, 2) // unchanged

	if e := fes.Peek(); e.Time != 16.0 {
		t.Errorf("departure moved to %v by a no-op rescale", e.Time)
	}
}

func TestEvent_String(t *testing.T) {
	e := &Event{Kind: Arrival, Time: 1.5}
	assert.Equal(t, "ARRIVAL@1.5000", e.String())
	e = &Event{Kind: Departure, Time: 2.25}
	assert.Equal(t, "DEPARTURE@2.2500", e.String())
}
