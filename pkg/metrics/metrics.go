package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics holds the collectors for a fixture run, registered on their own registry
type Metrics struct {
	registry *prometheus.Registry

	Runs             *prometheus.CounterVec
	GenerationTime   prometheus.Histogram
	OperandBits      *prometheus.GaugeVec
	BytesWritten     prometheus.Gauge
	LastSuccessStamp prometheus.Gauge
}

// New creates the collectors on a fresh registry
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fixture_runs_total",
			Help: "The total number of fixture generation runs",
		}, []string{"policy", "division", "status"}),

		GenerationTime: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fixture_generation_seconds",
			Help:    "Time taken to generate and write a fixture file",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs up to ~1.6s
		}),

		OperandBits: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fixture_operand_bits",
			Help: "Bit length of each generated operand",
		}, []string{"operand"}),

		BytesWritten: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fixture_bytes_written",
			Help: "Size of the last fixture file written",
		}),

		LastSuccessStamp: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fixture_last_success_timestamp_seconds",
			Help: "Unix time of the last successful fixture run",
		}),
	}
}

// Registry returns the registry holding the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRun records the outcome of one run
func (m *Metrics) ObserveRun(policy, division string, started time.Time, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}

	m.Runs.WithLabelValues(policy, division, status).Inc()
	m.GenerationTime.Observe(time.Since(started).Seconds())
	if err == nil {
		m.LastSuccessStamp.SetToCurrentTime()
	}
}

// WriteTextfile dumps the registry in the node exporter textfile format
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
