package bus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts and times dispatched messages.
type Metrics struct {
	dispatched *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics registers the bus collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "osintranet",
			Subsystem: "bus",
			Name:      "dispatched_total",
			Help:      "Queries and commands dispatched, by outcome.",
		}, []string{"kind", "message", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "osintranet",
			Subsystem: "bus",
			Name:      "dispatch_duration_seconds",
			Help:      "Time spent in query and command handlers.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind", "message"}),
	}
	reg.MustRegister(m.dispatched, m.duration)
	return m
}

func (m *Metrics) observe(kind Kind, message, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.dispatched.WithLabelValues(string(kind), message, outcome).Inc()
	m.duration.WithLabelValues(string(kind), message).Observe(d.Seconds())
}
