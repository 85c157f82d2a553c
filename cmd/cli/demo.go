package main

import (
	"fmt"

	"github.com/amirasaad/minibank/infra/initializer"
	"github.com/amirasaad/minibank/pkg/app"
	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/domain/account"
	metricsprom "github.com/amirasaad/minibank/pkg/metrics/prometheus"
	"github.com/spf13/cobra"
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	var (
		kind        string
		accountID   int
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the two-account demonstration ledger",
		Long: "Opens accounts 101 and 102, deposits and withdraws on both, registers them " +
			"with a bank, prints every balance and lists the filtered transactions of one account.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportKind, err := account.ParseKind(kind)
			if err != nil {
				return err
			}

			cfg, err := config.Load(opts.envFile)
			if err != nil {
				return fmt.Errorf("failed to load application configuration: %w", err)
			}
			if showMetrics {
				cfg.Metrics.Enabled = true
			}

			deps, err := initializer.InitializeDependencies(cfg, opts.out, opts.logOut)
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			scenario := app.DefaultScenario()
			scenario.ReportKind = reportKind
			scenario.ReportAccountID = accountID

			ledger := app.New(deps.Deps, cfg)
			res, err := ledger.RunScenario(scenario)
			if err != nil {
				return err
			}
			deps.Logger.Debug("Demo finished",
				"accounts", len(res.Summaries),
				"reported", len(res.Reported),
				"rejected", len(res.Rejected),
			)

			if deps.Registry == nil {
				return nil
			}
			if err := ledger.Printer.Heading("Metrics:"); err != nil {
				return err
			}
			return metricsprom.WriteText(opts.out, deps.Registry)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(account.KindDeposit), "transaction kind to list: creation, deposit, withdrawal or all")
	cmd.Flags().IntVar(&accountID, "account", 101, "account whose transactions are listed")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "record ledger metrics and print them after the report (same as METRICS_ENABLED=true)")
	return cmd
}
