package account

import (
	"errors"
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/amirasaad/minibank/pkg/decorator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when a deposit or withdrawal amount is not positive.
	ErrInvalidAmount = errors.New("transaction amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnknownTransactionKind is returned when filtering by a kind that does not exist.
	ErrUnknownTransactionKind = errors.New("unknown transaction kind")
)

// Operation labels passed to the account's decorator.
const (
	LabelCreation   = "Account Creation"
	LabelDeposit    = "Deposit"
	LabelWithdrawal = "Withdrawal"
)

// Account owns a balance and the ordered log of transactions that produced it.
//
// Invariants:
//   - The balance equals the sum of the signed amounts in the log.
//   - A withdrawal never takes the balance below zero.
//   - The log is append-only; recorded transactions are never changed or removed.
//   - Balance and log change together under one mutex.
type Account struct {
	mu           sync.Mutex
	id           int
	balance      decimal.Decimal
	transactions []Transaction

	now       func() time.Time
	decorator decorator.Decorator
}

// Option configures an Account at construction time.
type Option func(*Account)

// WithClock overrides the clock used to stamp transactions.
func WithClock(now func() time.Time) Option {
	return func(a *Account) {
		if now != nil {
			a.now = now
		}
	}
}

// WithDecorator sets the decorator applied to Create, Deposit and Withdraw.
func WithDecorator(d decorator.Decorator) Option {
	return func(a *Account) {
		if d != nil {
			a.decorator = d
		}
	}
}

// New builds an account with a zero balance and records its creation. The creation
// record is always the first entry, even if the decorator skips the operation.
func New(id int, opts ...Option) *Account {
	a := &Account{
		id:        id,
		balance:   decimal.Zero,
		now:       time.Now,
		decorator: decorator.Noop{},
	}
	for _, opt := range opts {
		opt(a)
	}
	ran := false
	// New cannot fail; a decorator that skips the op still gets its creation record.
	_ = a.decorator.Execute(LabelCreation, func() error { //nolint:errcheck
		ran = true
		return a.create()
	})
	if !ran {
		_ = a.create() //nolint:errcheck
	}
	return a
}

// ID returns the account number.
func (a *Account) ID() int {
	return a.id
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Len returns the number of recorded transactions.
func (a *Account) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.transactions)
}

// Create appends a creation record with a zero amount through the decorator. New records
// one already; calling Create again appends another creation record and leaves the balance untouched.
func (a *Account) Create() error {
	return a.decorator.Execute(LabelCreation, a.create)
}

func (a *Account) create() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.appendLocked(KindCreation, decimal.Zero)
	return nil
}

// Deposit adds amount to the balance. Non-positive amounts fail with ErrInvalidAmount.
func (a *Account) Deposit(amount decimal.Decimal) error {
	return a.decorator.Execute(LabelDeposit, func() error {
		if !amount.IsPositive() {
			return fmt.Errorf("deposit %s: %w", amount, ErrInvalidAmount)
		}
		a.mu.Lock()
		defer a.mu.Unlock()
		a.balance = a.balance.Add(amount)
		a.appendLocked(KindDeposit, amount)
		return nil
	})
}

// Withdraw subtracts amount from the balance. Withdrawing the whole balance is allowed;
// anything more fails with ErrInsufficientFunds and leaves the account unchanged.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	return a.decorator.Execute(LabelWithdrawal, func() error {
		if !amount.IsPositive() {
			return fmt.Errorf("withdraw %s: %w", amount, ErrInvalidAmount)
		}
		a.mu.Lock()
		defer a.mu.Unlock()
		if amount.GreaterThan(a.balance) {
			return fmt.Errorf("withdraw %s from balance %s: %w", amount, a.balance, ErrInsufficientFunds)
		}
		a.balance = a.balance.Sub(amount)
		a.appendLocked(KindWithdrawal, amount)
		return nil
	})
}

// Transactions returns every transaction in insertion order.
func (a *Account) Transactions() iter.Seq[Transaction] {
	seq, _ := a.TransactionsMatching(KindAny) //nolint:errcheck
	return seq
}

// TransactionsMatching returns a lazy sequence of the transactions of the given kind,
// in insertion order. KindAny returns the full log. The sequence can be ranged over
// any number of times; each traversal sees the log as it is when the traversal starts.
func (a *Account) TransactionsMatching(kind Kind) (iter.Seq[Transaction], error) {
	if kind != KindAny && !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransactionKind, string(kind))
	}
	return func(yield func(Transaction) bool) {
		for _, tx := range a.snapshot() {
			if kind != KindAny && tx.Kind != kind {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}, nil
}

// snapshot returns the log as of now. Recorded entries are never rewritten, so the
// capped slice stays valid while later appends go elsewhere.
func (a *Account) snapshot() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := len(a.transactions)
	return a.transactions[:n:n]
}

func (a *Account) appendLocked(kind Kind, amount decimal.Decimal) {
	a.transactions = append(a.transactions, Transaction{
		ID:        uuid.New(),
		Kind:      kind,
		Amount:    amount,
		CreatedAt: a.now(),
	})
}
