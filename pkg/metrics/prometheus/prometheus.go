package prometheus

import (
	"time"

	"github.com/amirasaad/minibank/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements metrics.Recorder for Prometheus.
type Recorder struct {
	namespace string

	operations *prometheus.CounterVec
	latency    *prometheus.HistogramVec
}

var _ metrics.Recorder = (*Recorder)(nil)

// NewRecorder creates a new Prometheus recorder.
func NewRecorder(namespace string) *Recorder {
	return &Recorder{
		namespace: namespace,
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_operations_total",
				Help:      "Total number of ledger operations per operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ledger_operation_duration_seconds",
				Help:      "Ledger operation latency in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.000001, 10, 7),
			},
			[]string{"operation"},
		),
	}
}

// Register registers all metrics with the given Prometheus registry.
func (r *Recorder) Register(registry *prometheus.Registry) error {
	collectors := []prometheus.Collector{
		r.operations,
		r.latency,
	}

	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

// RecordOperation records a ledger operation.
func (r *Recorder) RecordOperation(operation string, success bool, duration time.Duration) {
	r.operations.WithLabelValues(operation, metrics.Outcome(success)).Inc()
	r.latency.WithLabelValues(operation).Observe(duration.Seconds())
}
