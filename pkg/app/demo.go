package app

import (
	"errors"
	"fmt"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/bank"
	"github.com/shopspring/decimal"
)

// Step is one scripted ledger operation.
type Step struct {
	AccountID int
	Kind      account.Kind
	Amount    decimal.Decimal
}

// Scenario describes accounts to open, operations to run on them and the kind
// used to filter the report of ReportAccountID.
type Scenario struct {
	AccountIDs      []int
	Steps           []Step
	ReportAccountID int
	ReportKind      account.Kind
}

// DefaultScenario opens accounts 101 and 102, moves money through both and
// reports the deposits of account 101.
func DefaultScenario() Scenario {
	return Scenario{
		AccountIDs: []int{101, 102},
		Steps: []Step{
			{AccountID: 101, Kind: account.KindDeposit, Amount: decimal.NewFromInt(1000)},
			{AccountID: 101, Kind: account.KindWithdrawal, Amount: decimal.NewFromInt(300)},
			{AccountID: 102, Kind: account.KindDeposit, Amount: decimal.NewFromInt(500)},
			{AccountID: 102, Kind: account.KindWithdrawal, Amount: decimal.NewFromInt(100)},
		},
		ReportAccountID: 101,
		ReportKind:      account.KindDeposit,
	}
}

// Result summarizes a scenario run.
type Result struct {
	Summaries []bank.Summary
	Reported  []account.Transaction
	// Rejected holds the steps that failed with a recoverable ledger error.
	Rejected []error
}

// RunScenario opens the scenario's accounts, applies its steps, registers the
// accounts with the bank and prints both report sections. Insufficient funds and
// invalid amounts are reported and do not stop the run. A report account that the
// scenario does not open is an error.
func (a *App) RunScenario(s Scenario) (*Result, error) {
	accounts := make(map[int]*account.Account, len(s.AccountIDs))
	for _, id := range s.AccountIDs {
		if _, ok := accounts[id]; ok {
			return nil, fmt.Errorf("account %d: duplicate id", id)
		}
		accounts[id] = a.NewAccount(id)
	}

	res := &Result{}
	for _, step := range s.Steps {
		acc, ok := accounts[step.AccountID]
		if !ok {
			return nil, fmt.Errorf("step on account %d: %w", step.AccountID, errUnknownAccount)
		}
		if err := a.apply(acc, step); err != nil {
			if !isRecoverable(err) {
				return nil, err
			}
			a.Deps.Logger.Warn("Step rejected", "account_id", step.AccountID, "kind", step.Kind, "error", err)
			res.Rejected = append(res.Rejected, err)
		}
	}

	for _, id := range s.AccountIDs {
		if err := a.Bank.Register(accounts[id]); err != nil {
			return nil, err
		}
	}

	if err := a.Printer.Heading("Accounts in the bank:"); err != nil {
		return nil, err
	}
	if _, err := a.Printer.Summaries(a.Bank.Summaries()); err != nil {
		return nil, err
	}
	for summary := range a.Bank.Summaries() {
		res.Summaries = append(res.Summaries, summary)
	}

	reported, ok := accounts[s.ReportAccountID]
	if !ok {
		return nil, fmt.Errorf("report on account %d: %w", s.ReportAccountID, errUnknownAccount)
	}
	seq, err := reported.TransactionsMatching(s.ReportKind)
	if err != nil {
		return nil, err
	}
	if err := a.Printer.Heading(fmt.Sprintf("%s transactions of account %d:", s.ReportKind, s.ReportAccountID)); err != nil {
		return nil, err
	}
	if _, err := a.Printer.Transactions(seq); err != nil {
		return nil, err
	}
	for tx := range seq {
		res.Reported = append(res.Reported, tx)
	}
	return res, nil
}

var errUnknownAccount = errors.New("unknown account")

func (a *App) apply(acc *account.Account, step Step) error {
	switch step.Kind {
	case account.KindDeposit:
		return acc.Deposit(step.Amount)
	case account.KindWithdrawal:
		return acc.Withdraw(step.Amount)
	case account.KindCreation:
		return acc.Create()
	default:
		return fmt.Errorf("step %q: %w", step.Kind, account.ErrUnknownTransactionKind)
	}
}

func isRecoverable(err error) bool {
	return errors.Is(err, account.ErrInsufficientFunds) || errors.Is(err, account.ErrInvalidAmount)
}
