package decorator

import (
	"log/slog"
)

// Logging records the outcome of every operation with a structured logger.
// Failed operations are logged at warn level since every ledger error is recoverable.
type Logging struct {
	logger *slog.Logger
}

// NewLogging creates a Logging decorator. A nil logger falls back to slog.Default().
func NewLogging(logger *slog.Logger) *Logging {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logging{logger: logger}
}

// Execute runs operation and logs its outcome. Panics are logged and re-raised.
func (d *Logging) Execute(label string, operation func() error) error {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Transaction panic recovered", "operation", label, "panic", r)
			panic(r)
		}
	}()

	if err := operation(); err != nil {
		d.logger.Warn("Transaction operation failed", "operation", label, "error", err)
		return err
	}
	d.logger.Debug("Transaction performed", "operation", label)
	return nil
}
