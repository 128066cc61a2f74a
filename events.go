package slicegrow

import (
	"iter"
	"slices"
)

// ReallocationEvent records one growth of an array's backing block.
type ReallocationEvent struct {
	PriorCapacity   int `json:"priorCapacity" yaml:"priorCapacity"`
	NewCapacity     int `json:"newCapacity" yaml:"newCapacity"`
	ResultingLength int `json:"resultingLength" yaml:"resultingLength"`
}

// Ratio returns NewCapacity/PriorCapacity, or 0 for growth from an empty block.
func (e ReallocationEvent) Ratio() float64 {
	if e.PriorCapacity == 0 {
		return 0
	}
	return float64(e.NewCapacity) / float64(e.PriorCapacity)
}

// Observer is called synchronously once per growth, in growth order.
type Observer func(ReallocationEvent)

// Recorder accumulates events. Its Observe method is an Observer.
// The zero value is ready to use.
type Recorder struct {
	events []ReallocationEvent
}

// Observe appends ev to the recording.
func (r *Recorder) Observe(ev ReallocationEvent) {
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []ReallocationEvent {
	return slices.Clone(r.events)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// All iterates over the recorded events in growth order.
func (r *Recorder) All() iter.Seq[ReallocationEvent] {
	return slices.Values(r.events)
}

// Reset discards the recording.
func (r *Recorder) Reset() {
	r.events = r.events[:0]
}
