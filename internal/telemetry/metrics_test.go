package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/pavanmanishd/slicegrow"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Growth Metrics", func() {
	Describe("NewMetrics", func() {
		It("can be registered with prometheus", func() {
			registry := prometheus.NewRegistry()
			metrics := NewMetrics()

			Expect(metrics.Register(registry)).To(Succeed())
		})

		It("refuses to register twice", func() {
			registry := prometheus.NewRegistry()
			metrics := NewMetrics()

			Expect(metrics.Register(registry)).To(Succeed())
			Expect(metrics.Register(registry)).ToNot(Succeed())
		})
	})

	Describe("Record", func() {
		It("tracks a single growth", func() {
			metrics := NewMetrics()
			metrics.Record("a", slicegrow.ReallocationEvent{PriorCapacity: 1024, NewCapacity: 1280, ResultingLength: 1025})

			Expect(testutil.ToFloat64(metrics.Reallocations.WithLabelValues("a"))).To(Equal(1.0))
			Expect(testutil.ToFloat64(metrics.ElementsCopied.WithLabelValues("a"))).To(Equal(1024.0))
			Expect(testutil.ToFloat64(metrics.Capacity.WithLabelValues("a"))).To(Equal(1280.0))
			Expect(testutil.ToFloat64(metrics.Length.WithLabelValues("a"))).To(Equal(1025.0))
		})

		It("skips the ratio for growth from empty", func() {
			registry := prometheus.NewRegistry()
			metrics := NewMetrics()
			Expect(metrics.Register(registry)).To(Succeed())

			metrics.Record("a", slicegrow.ReallocationEvent{PriorCapacity: 0, NewCapacity: 1, ResultingLength: 1})

			samples, err := Snapshot(registry)
			Expect(err).ToNot(HaveOccurred())
			Expect(samples).ToNot(ContainElement(HaveField("Name", "slicegrow_array_growth_ratio_count")))
		})
	})

	Describe("Observer", func() {
		It("follows a simulated array", func() {
			registry := prometheus.NewRegistry()
			metrics := NewMetrics()
			Expect(metrics.Register(registry)).To(Succeed())

			events, err := slicegrow.Simulate(2000, 0, slicegrow.WithObserver(metrics.Observer("sim")))
			Expect(err).ToNot(HaveOccurred())
			Expect(events).To(HaveLen(14))

			samples, err := Snapshot(registry)
			Expect(err).ToNot(HaveOccurred())
			Expect(samples).To(ContainElements(
				Sample{Name: "slicegrow_array_capacity", Labels: "array=sim", Value: 2000},
				Sample{Name: "slicegrow_array_elements_copied_total", Labels: "array=sim", Value: 4927},
				Sample{Name: "slicegrow_array_growth_ratio_count", Labels: "array=sim", Value: 13},
				Sample{Name: "slicegrow_array_length", Labels: "array=sim", Value: 1601},
				Sample{Name: "slicegrow_array_reallocations_total", Labels: "array=sim", Value: 14},
			))
		})

		It("keeps arrays apart by label", func() {
			metrics := NewMetrics()
			a, err := slicegrow.New[int](0, slicegrow.WithObserver(metrics.Observer("a")))
			Expect(err).ToNot(HaveOccurred())
			b, err := slicegrow.New[int](0, slicegrow.WithObserver(metrics.Observer("b")))
			Expect(err).ToNot(HaveOccurred())

			for i := 0; i < 3; i++ {
				Expect(a.Append(i)).To(Succeed())
			}
			Expect(b.Append(0)).To(Succeed())

			Expect(testutil.ToFloat64(metrics.Reallocations.WithLabelValues("a"))).To(Equal(3.0))
			Expect(testutil.ToFloat64(metrics.Reallocations.WithLabelValues("b"))).To(Equal(1.0))
		})
	})

	Describe("Snapshot", func() {
		It("returns samples sorted by name", func() {
			registry := prometheus.NewRegistry()
			metrics := NewMetrics()
			Expect(metrics.Register(registry)).To(Succeed())
			metrics.Record("z", slicegrow.ReallocationEvent{PriorCapacity: 2, NewCapacity: 4, ResultingLength: 3})
			metrics.Record("a", slicegrow.ReallocationEvent{PriorCapacity: 2, NewCapacity: 4, ResultingLength: 3})

			samples, err := Snapshot(registry)
			Expect(err).ToNot(HaveOccurred())
			for i := 1; i < len(samples); i++ {
				Expect(samples[i-1].Name <= samples[i].Name).To(BeTrue())
			}
			Expect(samples[0].Labels).To(Equal("array=a"))
		})

		It("is empty for an empty registry", func() {
			samples, err := Snapshot(prometheus.NewRegistry())
			Expect(err).ToNot(HaveOccurred())
			Expect(samples).To(BeEmpty())
		})
	})
})
