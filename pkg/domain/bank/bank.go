// Package bank aggregates externally owned accounts for reporting.
package bank

import (
	"errors"
	"iter"
	"sync"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/shopspring/decimal"
)

// ErrNilAccount is returned when registering a nil account.
var ErrNilAccount = errors.New("nil account")

// Summary is the display record produced for one registered account.
type Summary struct {
	AccountID int
	Balance   decimal.Decimal
}

// Bank holds references to accounts in registration order. It does not own them:
// the same account may be registered more than once or used elsewhere.
type Bank struct {
	mu       sync.RWMutex
	accounts []*account.Account
}

// New creates an empty bank.
func New() *Bank {
	return &Bank{}
}

// Register appends acc. No de-duplication is performed.
func (b *Bank) Register(acc *account.Account) error {
	if acc == nil {
		return ErrNilAccount
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.accounts = append(b.accounts, acc)
	return nil
}

// Len returns the number of registrations.
func (b *Bank) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.accounts)
}

// Iterator returns a single-pass cursor over the accounts registered so far.
func (b *Bank) Iterator() *Iterator {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := len(b.accounts)
	return &Iterator{accounts: b.accounts[:n:n]}
}

// Summaries returns a re-enterable sequence of summaries in registration order.
// Every traversal starts a fresh Iterator.
func (b *Bank) Summaries() iter.Seq[Summary] {
	return func(yield func(Summary) bool) {
		it := b.Iterator()
		for it.HasNext() {
			s, _ := it.Next()
			if !yield(s) {
				return
			}
		}
	}
}

// Iterator walks a fixed view of a bank's registrations once.
// Balances are read when Next reaches the account.
type Iterator struct {
	accounts []*account.Account
	index    int
}

// HasNext reports whether Next will return another summary.
func (it *Iterator) HasNext() bool {
	return it.index < len(it.accounts)
}

// Next returns the next summary. At the end of the sequence it returns false.
func (it *Iterator) Next() (Summary, bool) {
	if !it.HasNext() {
		return Summary{}, false
	}
	acc := it.accounts[it.index]
	it.index++
	return Summary{AccountID: acc.ID(), Balance: acc.Balance()}, true
}
