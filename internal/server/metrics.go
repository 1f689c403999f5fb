package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "team_maker"

// Metrics holds the Prometheus instruments exported on /metrics.
type Metrics struct {
	builds        *prometheus.CounterVec
	buildDuration prometheus.Histogram
	unassigned    prometheus.Counter
	edits         *prometheus.CounterVec
}

// NewMetrics creates the team maker instruments and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "builds",
			Name:      "total",
			Help:      "Total team builds by result (success, invalid).",
		}, []string{"result"}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "builds",
			Name:      "duration_seconds",
			Help:      "Duration of successful team builds in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100us .. ~1.6s
		}),
		unassigned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "builds",
			Name:      "unassigned_members_total",
			Help:      "Members that could not be seated because every team was full.",
		}),
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "edits",
			Name:      "total",
			Help:      "Total team edits by operation (recalculate, move, remove, park, place) and result.",
		}, []string{"op", "result"}),
	}

	reg.MustRegister(m.builds, m.buildDuration, m.unassigned, m.edits)
	return m
}

func (m *Metrics) observeBuild(seconds float64, unassigned int) {
	m.builds.WithLabelValues("success").Inc()
	m.buildDuration.Observe(seconds)
	m.unassigned.Add(float64(unassigned))
}

func (m *Metrics) buildRejected() {
	m.builds.WithLabelValues("invalid").Inc()
}

func (m *Metrics) observeEdit(op string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.edits.WithLabelValues(op, result).Inc()
}
