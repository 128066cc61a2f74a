package report

import (
	"github.com/thoas/go-funk"

	"github.com/pavanmanishd/slicegrow"
)

// Summary aggregates a list of reallocation events.
type Summary struct {
	Reallocations  int     `json:"reallocations" yaml:"reallocations"`
	FinalCapacity  int     `json:"finalCapacity" yaml:"finalCapacity"`
	ElementsCopied int     `json:"elementsCopied" yaml:"elementsCopied"`
	MinRatio       float64 `json:"minRatio" yaml:"minRatio"`
	MaxRatio       float64 `json:"maxRatio" yaml:"maxRatio"`
	// Overhead is the unused share of the final capacity.
	Overhead float64 `json:"overhead" yaml:"overhead"`
}

// Summarize aggregates the events produced by count appends to an array
// created with the given initial capacity.
func Summarize(count, initial int, events []slicegrow.ReallocationEvent) Summary {
	s := Summary{Reallocations: len(events), FinalCapacity: initial}
	if len(events) > 0 {
		s.FinalCapacity = events[len(events)-1].NewCapacity
	}
	if s.FinalCapacity > 0 && count <= s.FinalCapacity {
		s.Overhead = float64(s.FinalCapacity-count) / float64(s.FinalCapacity)
	}
	if len(events) == 0 {
		return s
	}

	copied := funk.Map(events, func(ev slicegrow.ReallocationEvent) int {
		return min(ev.PriorCapacity, ev.ResultingLength-1)
	}).([]int)
	s.ElementsCopied = int(funk.Sum(copied))

	grown := funk.Filter(events, func(ev slicegrow.ReallocationEvent) bool {
		return ev.PriorCapacity > 0
	}).([]slicegrow.ReallocationEvent)
	if len(grown) > 0 {
		ratios := funk.Map(grown, func(ev slicegrow.ReallocationEvent) float64 {
			return ev.Ratio()
		}).([]float64)
		s.MinRatio = funk.MinFloat64(ratios)
		s.MaxRatio = funk.MaxFloat64(ratios)
	}
	return s
}
