package slicegrow

// GrowthThreshold is the length below which capacity doubles on growth.
const GrowthThreshold = 1024

// Policy computes the capacity of the block allocated when an array grows.
// oldCap and oldLen describe the array before the append; required is the
// length the array must hold afterwards.
type Policy interface {
	NextCapacity(oldCap, oldLen, required int) int
}

// PolicyFunc adapts an ordinary function to the Policy interface.
type PolicyFunc func(oldCap, oldLen, required int) int

// NextCapacity calls f(oldCap, oldLen, required).
func (f PolicyFunc) NextCapacity(oldCap, oldLen, required int) int {
	return f(oldCap, oldLen, required)
}

// TieredPolicy doubles small arrays and grows large ones by 25% per step.
// A zero or negative Threshold means GrowthThreshold.
type TieredPolicy struct {
	Threshold int
}

// DefaultPolicy is the policy used when no other is configured.
var DefaultPolicy Policy = TieredPolicy{Threshold: GrowthThreshold}

// NextCapacity implements Policy.
func (p TieredPolicy) NextCapacity(oldCap, oldLen, required int) int {
	threshold := p.Threshold
	if threshold <= 0 {
		threshold = GrowthThreshold
	}
	return nextCapacity(oldCap, oldLen, required, threshold)
}

// NextCapacity returns the capacity the default policy picks when an array
// of capacity oldCap and length oldLen must grow to hold required elements.
func NextCapacity(oldCap, oldLen, required int) int {
	return nextCapacity(oldCap, oldLen, required, GrowthThreshold)
}

func nextCapacity(oldCap, oldLen, required, threshold int) int {
	doubleCap := oldCap + oldCap
	if required > doubleCap {
		return required
	}
	if oldLen < threshold {
		return doubleCap
	}

	newCap := oldCap
	// newCap > 0 stops both the zero-capacity spin and a wrapped sum.
	for 0 < newCap && newCap < required {
		step := newCap / 4
		if step == 0 {
			// Only reachable with a threshold below 4.
			step = 1
		}
		newCap += step
	}
	if newCap <= 0 {
		return required
	}
	return newCap
}
