package ringbuffer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dgodfrey206/RingBuffer/metric"
)

// bufferMetrics holds Prometheus metrics for buffer operations.
type bufferMetrics struct {
	puts  prometheus.Counter
	gets  prometheus.Counter
	peeks prometheus.Counter
	drops prometheus.Counter

	size        prometheus.Gauge
	utilization prometheus.Gauge
}

// newBufferMetrics creates and registers buffer metrics with the provided
// registry, const-labeled by the buffer name.
func newBufferMetrics(registry *metric.Registry, name string) (*bufferMetrics, error) {
	m := &bufferMetrics{
		puts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuffer",
			Subsystem:   "buffer",
			Name:        "puts_total",
			ConstLabels: prometheus.Labels{"buffer": name},
			Help:        "Total number of successful buffer insertions",
		}),
		gets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuffer",
			Subsystem:   "buffer",
			Name:        "gets_total",
			ConstLabels: prometheus.Labels{"buffer": name},
			Help:        "Total number of consuming buffer reads",
		}),
		peeks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuffer",
			Subsystem:   "buffer",
			Name:        "peeks_total",
			ConstLabels: prometheus.Labels{"buffer": name},
			Help:        "Total number of non-consuming buffer accesses",
		}),
		drops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuffer",
			Subsystem:   "buffer",
			Name:        "drops_total",
			ConstLabels: prometheus.Labels{"buffer": name},
			Help:        "Total number of values rejected by saturated puts",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringbuffer",
			Subsystem:   "buffer",
			Name:        "size",
			ConstLabels: prometheus.Labels{"buffer": name},
			Help:        "Current number of elements in the buffer",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringbuffer",
			Subsystem:   "buffer",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"buffer": name},
			Help:        "Buffer utilization as a fraction (0.0 to 1.0)",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(name, "buffer_puts", m.puts); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "buffer_gets", m.gets); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "buffer_peeks", m.peeks); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(name, "buffer_drops", m.drops); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(name, "buffer_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(name, "buffer_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordPut increments the put counter and updates size/utilization.
func (m *bufferMetrics) recordPut(size, capacity int) {
	m.puts.Inc()
	m.updateSize(size, capacity)
}

// recordGet increments the get counter and updates size/utilization.
func (m *bufferMetrics) recordGet(size, capacity int) {
	m.gets.Inc()
	m.updateSize(size, capacity)
}

// recordPeek increments the peek counter.
func (m *bufferMetrics) recordPeek() {
	m.peeks.Inc()
}

// recordDrop increments the drop counter.
func (m *bufferMetrics) recordDrop() {
	m.drops.Inc()
}

// updateSize sets the current buffer size and utilization.
func (m *bufferMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	if capacity > 0 {
		m.utilization.Set(float64(size) / float64(capacity))
	}
}
