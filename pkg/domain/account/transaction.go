package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind identifies what a Transaction records.
type Kind string

// Transaction kinds. KindAny is not a kind of its own: as a filter it matches every transaction.
const (
	KindAny        Kind = ""
	KindCreation   Kind = "creation"
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// IsValid reports whether k names a concrete transaction kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindCreation, KindDeposit, KindWithdrawal:
		return true
	default:
		return false
	}
}

// String returns the kind name.
func (k Kind) String() string {
	if k == KindAny {
		return "any"
	}
	return string(k)
}

// ParseKind parses a kind name case-insensitively. The empty string and "all" parse to KindAny.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindAny, "all", "any":
		return KindAny, nil
	case KindCreation, KindDeposit, KindWithdrawal:
		return k, nil
	default:
		return KindAny, fmt.Errorf("%w: %q", ErrUnknownTransactionKind, s)
	}
}

// Transaction is an immutable record appended to an account's log.
// Amount is never negative; the Kind decides whether it adds to or subtracts from the balance.
type Transaction struct {
	ID        uuid.UUID
	Kind      Kind
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// Signed returns the amount's contribution to the balance.
func (t Transaction) Signed() decimal.Decimal {
	switch t.Kind {
	case KindDeposit:
		return t.Amount
	case KindWithdrawal:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}
