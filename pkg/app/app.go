package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/decorator"
	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/bank"
	"github.com/amirasaad/minibank/pkg/report"
)

// Deps contains the infrastructure the ledger runs on.
type Deps struct {
	Logger    *slog.Logger
	Decorator decorator.Decorator
	Out       io.Writer
	Clock     func() time.Time
}

// App ties configuration and dependencies to the ledger domain.
type App struct {
	Deps    *Deps
	Config  *config.App
	Bank    *bank.Bank
	Printer *report.Printer
}

// New creates an App. Missing dependencies fall back to process defaults.
func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Decorator == nil {
		deps.Decorator = decorator.Noop{}
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	return &App{
		Deps:    deps,
		Config:  cfg,
		Bank:    bank.New(),
		Printer: report.NewPrinter(deps.Out, report.NewFormatter(cfg.Ledger.CurrencySymbol, cfg.Ledger.TimeFormat)),
	}
}

// NewAccount opens an account that uses the app's clock and decorator.
// The account is not registered with the bank.
func (a *App) NewAccount(id int) *account.Account {
	a.Deps.Logger.Debug("Opening account", "account_id", id)
	return account.New(id,
		account.WithClock(a.Deps.Clock),
		account.WithDecorator(decorator.Chain(a.Deps.Decorator, a.balanceAlert())),
	)
}

// balanceAlert prints "Insufficient balance" when a withdrawal is refused. It sits
// innermost, so the alert comes before the notification for the same operation.
func (a *App) balanceAlert() decorator.Decorator {
	return decorator.Func(func(_ string, op func() error) error {
		err := op()
		if errors.Is(err, account.ErrInsufficientFunds) {
			_, _ = fmt.Fprintln(a.Deps.Out, "Insufficient balance") //nolint:errcheck
		}
		return err
	})
}
