// Package slicegrow implements a growable contiguous array with an explicit,
// observable capacity-growth policy.
//
// # Overview
//
// An Array keeps a length, a capacity and an owned backing block. Appending
// into spare capacity writes in place. Appending into a full block allocates a
// larger one, copies the existing elements across in order and releases the
// old block. Each such growth is reported as a ReallocationEvent.
//
// This is the same bookkeeping the Go runtime performs for append on slices,
// made explicit so it can be traced, tested and compared:
//
//   - Studying how a growth policy trades memory overhead for append cost
//   - Reproducing capacity tables for documentation and benchmarks
//   - Plugging a custom allocator (chunked, budgeted) under a growable array
//
// # Basic Usage
//
//	a, err := slicegrow.New[int](0) // empty, nothing allocated
//	if err != nil {
//		return err
//	}
//	for i := range 2000 {
//		if err := a.Append(i); err != nil {
//			return err
//		}
//	}
//	fmt.Println(a.Len(), a.Cap()) // 2000 2000
//
// # Growth Policy
//
// Capacity doubles while the array holds fewer than GrowthThreshold elements.
// From then on it grows by a quarter per step until the required length fits.
// A bulk requirement larger than double the old capacity is honoured exactly.
// See NextCapacity.
//
// # Observing Growth
//
//	var rec slicegrow.Recorder
//	a, _ := slicegrow.New[int](0, slicegrow.WithObserver(rec.Observe))
//	...
//	for ev := range rec.All() {
//		fmt.Println(ev.ResultingLength, ev.PriorCapacity, ev.NewCapacity, ev.Ratio())
//	}
//
// # Thread Safety
//
// Array is not safe for concurrent use. Serialise writers yourself or use
// SafeArray, which wraps every operation in a mutex.
//
// # Important Notes
//
//   - Slice returns a view that is only valid until the next growth
//   - Append is all-or-nothing: on allocation failure the array is unchanged
//   - Operations on a released array panic
package slicegrow
