package decorator

import (
	"time"

	"github.com/amirasaad/minibank/pkg/metrics"
)

// Metrics reports the outcome and duration of every operation to a metrics.Recorder.
type Metrics struct {
	recorder metrics.Recorder
	now      func() time.Time
}

// NewMetrics creates a Metrics decorator. A nil recorder records nothing.
func NewMetrics(recorder metrics.Recorder) *Metrics {
	if recorder == nil {
		recorder = metrics.NoOpRecorder{}
	}
	return &Metrics{recorder: recorder, now: time.Now}
}

// Execute runs operation and records it.
func (d *Metrics) Execute(label string, operation func() error) error {
	start := d.now()
	err := operation()
	d.recorder.RecordOperation(label, err == nil, d.now().Sub(start))
	return err
}
