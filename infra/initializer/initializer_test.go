package initializer

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(metricsEnabled, notify bool) *config.App {
	return &config.App{
		Env:     "test",
		Log:     &config.Log{Level: int(slog.LevelInfo), Format: "text", TimeFormat: "15:04:05"},
		Ledger:  &config.Ledger{CurrencySymbol: "R$", TimeFormat: "2006-01-02 15:04:05", Notify: notify},
		Metrics: &config.Metrics{Enabled: metricsEnabled, Namespace: "test"},
	}
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := SetupLogger(&config.Log{Format: "json", TimeFormat: "15:04:05"}, &buf)
	logger.Info("hello", "operation", "Deposit")

	assert.Same(t, logger, slog.Default())
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"operation":"Deposit"`)
}

func TestInitializeDependencies_WithMetrics(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out, logs bytes.Buffer
	deps, err := InitializeDependencies(testConfig(true, true), &out, &logs)
	require.NoError(t, err)
	require.NotNil(t, deps.Registry)

	acc := account.New(1, account.WithDecorator(deps.Decorator))
	require.NoError(t, acc.Deposit(decimal.NewFromInt(5)))
	assert.ErrorIs(t, acc.Withdraw(decimal.NewFromInt(50)), account.ErrInsufficientFunds)

	assert.Contains(t, out.String(), "Transaction performed: Account Creation")
	assert.Contains(t, out.String(), "Transaction performed: Withdrawal")
	assert.Contains(t, logs.String(), "Transaction operation failed")

	families, err := deps.Registry.Gather()
	require.NoError(t, err)
	found := false
	for _, f := range families {
		if f.GetName() == "test_ledger_operations_total" {
			found = true
			var total float64
			for _, m := range f.GetMetric() {
				total += m.GetCounter().GetValue()
			}
			assert.InDelta(t, 3, total, 0)
		}
	}
	assert.True(t, found)
}

func TestInitializeDependencies_Quiet(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out, logs bytes.Buffer
	deps, err := InitializeDependencies(testConfig(false, false), &out, &logs)
	require.NoError(t, err)
	assert.Nil(t, deps.Registry)

	acc := account.New(1, account.WithDecorator(deps.Decorator))
	require.NoError(t, acc.Deposit(decimal.NewFromInt(5)))
	assert.Empty(t, out.String())
}
