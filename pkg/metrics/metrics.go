// Package metrics defines how ledger operations are counted.
// Implementations can export metrics to various backends (Prometheus, in-memory for tests).
package metrics

import (
	"time"
)

// Outcome labels used by recorders.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Recorder collects one sample per executed ledger operation.
type Recorder interface {
	RecordOperation(operation string, success bool, duration time.Duration)
}

// Outcome returns the outcome label for success.
func Outcome(success bool) string {
	if success {
		return OutcomeSuccess
	}
	return OutcomeFailure
}

// NoOpRecorder is a no-op implementation of Recorder.
type NoOpRecorder struct{}

// RecordOperation does nothing.
func (NoOpRecorder) RecordOperation(string, bool, time.Duration) {}
