package memory

import (
	"sync"
	"time"

	"github.com/amirasaad/minibank/pkg/metrics"
)

// OperationMetrics holds the counters for a single operation label.
type OperationMetrics struct {
	Successes int64
	Failures  int64
	Latencies []time.Duration
}

// Recorder implements metrics.Recorder in memory.
type Recorder struct {
	mu         sync.RWMutex
	operations map[string]*OperationMetrics
}

var _ metrics.Recorder = (*Recorder)(nil)

// NewRecorder creates an empty in-memory recorder.
func NewRecorder() *Recorder {
	return &Recorder{operations: make(map[string]*OperationMetrics)}
}

// RecordOperation records one operation sample.
func (r *Recorder) RecordOperation(operation string, success bool, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	om, ok := r.operations[operation]
	if !ok {
		om = &OperationMetrics{}
		r.operations[operation] = om
	}
	if success {
		om.Successes++
	} else {
		om.Failures++
	}
	om.Latencies = append(om.Latencies, duration)
}

// Snapshot returns a copy of the collected metrics keyed by operation label.
func (r *Recorder) Snapshot() map[string]OperationMetrics {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]OperationMetrics, len(r.operations))
	for name, om := range r.operations {
		cp := *om
		cp.Latencies = append([]time.Duration(nil), om.Latencies...)
		out[name] = cp
	}
	return out
}
