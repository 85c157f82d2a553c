package initializer

import (
	"fmt"
	"io"

	"github.com/amirasaad/minibank/pkg/app"
	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/decorator"
	"github.com/amirasaad/minibank/pkg/metrics"
	metricsprom "github.com/amirasaad/minibank/pkg/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies is what InitializeDependencies builds besides the app deps.
type Dependencies struct {
	*app.Deps
	// Registry holds the ledger collectors when metrics are enabled, nil otherwise.
	Registry *prometheus.Registry
	Recorder metrics.Recorder
}

// InitializeDependencies builds the logger, the metrics recorder and the decorator
// chain applied to every account operation. Reports and notifications go to out,
// logs go to logOut.
func InitializeDependencies(cfg *config.App, out, logOut io.Writer) (*Dependencies, error) {
	logger := SetupLogger(cfg.Log, logOut)

	deps := &Dependencies{
		Deps:     &app.Deps{Logger: logger, Out: out},
		Recorder: metrics.NoOpRecorder{},
	}

	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		recorder := metricsprom.NewRecorder(cfg.Metrics.Namespace)
		if err := recorder.Register(registry); err != nil {
			return nil, fmt.Errorf("failed to register ledger metrics: %w", err)
		}
		deps.Registry = registry
		deps.Recorder = recorder
		logger.Debug("Ledger metrics enabled", "namespace", cfg.Metrics.Namespace)
	}

	var notifier decorator.Decorator
	if cfg.Ledger.Notify {
		notifier = decorator.NewNotifier(out, decorator.WithTimeFormat(cfg.Ledger.TimeFormat))
	}
	deps.Decorator = decorator.Chain(
		notifier,
		decorator.NewLogging(logger),
		decorator.NewMetrics(deps.Recorder),
	)

	return deps, nil
}
