package slicegrow

// Simulate appends count ints one at a time to a fresh array with the given
// initial capacity and returns every growth in order. Options are applied
// after the internal recorder, so extra observers see the same events.
func Simulate(count, initialCapacity int, opts ...Option) ([]ReallocationEvent, error) {
	if count < 0 {
		return nil, invalidArgument("simulate", count)
	}

	var rec Recorder
	a, err := New[int](initialCapacity, append([]Option{WithObserver(rec.Observe)}, opts...)...)
	if err != nil {
		return nil, err
	}
	defer a.Release()

	for i := 0; i < count; i++ {
		if err := a.Append(i); err != nil {
			return rec.Events(), err
		}
	}
	return rec.Events(), nil
}

// ObserveBuiltin performs the same experiment with the runtime's own append
// and reports each capacity change. The numbers depend on the Go version and
// on allocator size classes, so they are only meaningful for comparison.
func ObserveBuiltin(count, initialCapacity int) []ReallocationEvent {
	if count < 0 || initialCapacity < 0 {
		return nil
	}

	var events []ReallocationEvent
	s := make([]int, 0, initialCapacity)
	prev := cap(s)
	for i := 0; i < count; i++ {
		s = append(s, i)
		if c := cap(s); c != prev {
			events = append(events, ReallocationEvent{
				PriorCapacity:   prev,
				NewCapacity:     c,
				ResultingLength: len(s),
			})
			prev = c
		}
	}
	return events
}
