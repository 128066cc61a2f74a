// Package telemetry exports reallocation events as Prometheus metrics.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/pavanmanishd/slicegrow"
)

const (
	namespace = "slicegrow"
	subsystem = "array"
)

// Metrics contains all growth-related Prometheus metrics
type Metrics struct {
	Reallocations  *prometheus.CounterVec
	ElementsCopied *prometheus.CounterVec
	Capacity       *prometheus.GaugeVec
	Length         *prometheus.GaugeVec
	GrowthRatio    *prometheus.HistogramVec
}

// NewMetrics creates growth metrics. Every metric carries an "array" label
// so several arrays can share one registry.
func NewMetrics() *Metrics {
	labels := []string{"array"}

	return &Metrics{
		Reallocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "reallocations_total",
				Help:      "Number of times the backing storage was replaced",
			},
			labels,
		),
		ElementsCopied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "elements_copied_total",
				Help:      "Elements copied from old to new backing storage",
			},
			labels,
		),
		Capacity: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "capacity",
				Help:      "Capacity after the most recent growth",
			},
			labels,
		),
		Length: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "length",
				Help:      "Length right after the most recent growth",
			},
			labels,
		),
		GrowthRatio: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "growth_ratio",
				Help:      "New capacity divided by prior capacity, growths from empty excluded",
				Buckets:   []float64{1.25, 1.5, 2, 4, 8},
			},
			labels,
		),
	}
}

// Register registers all metrics with the given registerer
func (m *Metrics) Register(registerer prometheus.Registerer) error {
	var err error
	for _, c := range []prometheus.Collector{
		m.Reallocations,
		m.ElementsCopied,
		m.Capacity,
		m.Length,
		m.GrowthRatio,
	} {
		err = multierr.Append(err, registerer.Register(c))
	}
	return err
}

// Record updates the metrics of array with one event.
func (m *Metrics) Record(array string, ev slicegrow.ReallocationEvent) {
	m.Reallocations.WithLabelValues(array).Inc()
	// Exact for single-element appends; an upper bound for bulk appends.
	m.ElementsCopied.WithLabelValues(array).Add(float64(min(ev.PriorCapacity, ev.ResultingLength-1)))
	m.Capacity.WithLabelValues(array).Set(float64(ev.NewCapacity))
	m.Length.WithLabelValues(array).Set(float64(ev.ResultingLength))
	if ev.PriorCapacity > 0 {
		m.GrowthRatio.WithLabelValues(array).Observe(ev.Ratio())
	}
}

// Observer returns a slicegrow.Observer that records into m under array.
func (m *Metrics) Observer(array string) slicegrow.Observer {
	return func(ev slicegrow.ReallocationEvent) {
		m.Record(array, ev)
	}
}
