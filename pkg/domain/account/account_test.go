package account_test

import (
	"bytes"
	"errors"
	"io"
	"iter"
	"log"
	"log/slog"
	"os"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/minibank/pkg/decorator"
	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func kinds(seq iter.Seq[account.Transaction]) []account.Kind {
	var out []account.Kind
	for tx := range seq {
		out = append(out, tx.Kind)
	}
	return out
}

func TestNew(t *testing.T) {
	t.Parallel()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	acc := account.New(101, account.WithClock(func() time.Time { return created }))

	assert.Equal(t, 101, acc.ID())
	assert.True(t, acc.Balance().IsZero())
	require.Equal(t, 1, acc.Len())

	txs := slices.Collect(acc.Transactions())
	assert.Equal(t, account.KindCreation, txs[0].Kind)
	assert.True(t, txs[0].Amount.IsZero())
	assert.Equal(t, created, txs[0].CreatedAt)
	assert.NotEmpty(t, txs[0].ID)
}

func TestCreate_RepeatedCallAppendsWithoutReset(t *testing.T) {
	t.Parallel()
	acc := account.New(1)
	require.NoError(t, acc.Deposit(dec("50")))

	require.NoError(t, acc.Create())

	assert.True(t, acc.Balance().Equal(dec("50")))
	assert.Equal(t,
		[]account.Kind{account.KindCreation, account.KindDeposit, account.KindCreation},
		kinds(acc.Transactions()))
}

func TestNew_RecordsCreationWhenDecoratorSkipsOp(t *testing.T) {
	t.Parallel()
	var labels []string
	skip := decorator.Func(func(label string, _ func() error) error {
		labels = append(labels, label)
		return errors.New("rejected")
	})

	acc := account.New(1, account.WithDecorator(skip))

	require.Equal(t, 1, acc.Len())
	assert.Equal(t, []account.Kind{account.KindCreation}, kinds(acc.Transactions()))
	assert.True(t, acc.Balance().IsZero())
	assert.Equal(t, []string{account.LabelCreation}, labels)
}

func TestNew_DecoratorErrorKeepsSingleCreationRecord(t *testing.T) {
	t.Parallel()
	failAfter := decorator.Func(func(_ string, op func() error) error {
		if err := op(); err != nil {
			return err
		}
		return errors.New("post-action failed")
	})

	acc := account.New(1, account.WithDecorator(failAfter))

	assert.Equal(t, []account.Kind{account.KindCreation}, kinds(acc.Transactions()))
}

func TestDeposit(t *testing.T) {
	t.Parallel()
	acc := account.New(1)

	require.NoError(t, acc.Deposit(dec("1000")))
	require.NoError(t, acc.Deposit(dec("0.25")))

	assert.True(t, acc.Balance().Equal(dec("1000.25")))
	assert.Equal(t, 3, acc.Len())
}

func TestDeposit_InvalidAmount(t *testing.T) {
	t.Parallel()
	for _, amt := range []string{"0", "-1", "-0.01"} {
		t.Run(amt, func(t *testing.T) {
			t.Parallel()
			acc := account.New(1)
			err := acc.Deposit(dec(amt))
			assert.ErrorIs(t, err, account.ErrInvalidAmount)
			assert.True(t, acc.Balance().IsZero())
			assert.Equal(t, 1, acc.Len())
		})
	}
}

func TestWithdraw(t *testing.T) {
	t.Parallel()
	acc := account.New(1)
	require.NoError(t, acc.Deposit(dec("100")))

	t.Run("successful withdrawal", func(t *testing.T) {
		require.NoError(t, acc.Withdraw(dec("30")))
		assert.True(t, acc.Balance().Equal(dec("70")))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		before := acc.Len()
		err := acc.Withdraw(dec("70.01"))
		assert.ErrorIs(t, err, account.ErrInsufficientFunds)
		assert.True(t, acc.Balance().Equal(dec("70")))
		assert.Equal(t, before, acc.Len())
	})

	t.Run("invalid amount", func(t *testing.T) {
		assert.ErrorIs(t, acc.Withdraw(dec("0")), account.ErrInvalidAmount)
		assert.ErrorIs(t, acc.Withdraw(dec("-5")), account.ErrInvalidAmount)
		assert.True(t, acc.Balance().Equal(dec("70")))
	})

	t.Run("exact balance", func(t *testing.T) {
		require.NoError(t, acc.Withdraw(dec("70")))
		assert.True(t, acc.Balance().IsZero())
	})
}

func TestBalanceMatchesLog(t *testing.T) {
	t.Parallel()
	acc := account.New(7)
	ops := []struct {
		deposit bool
		amount  string
	}{
		{true, "10"}, {false, "3"}, {false, "50"}, {true, "0.5"}, {false, "7.5"}, {false, "0.01"},
	}

	want := decimal.Zero
	for _, op := range ops {
		if op.deposit {
			require.NoError(t, acc.Deposit(dec(op.amount)))
			want = want.Add(dec(op.amount))
			continue
		}
		if err := acc.Withdraw(dec(op.amount)); err == nil {
			want = want.Sub(dec(op.amount))
		}
	}

	sum := decimal.Zero
	for tx := range acc.Transactions() {
		sum = sum.Add(tx.Signed())
	}
	assert.True(t, acc.Balance().Equal(want), "balance %s want %s", acc.Balance(), want)
	assert.True(t, acc.Balance().Equal(sum), "balance %s log %s", acc.Balance(), sum)
	assert.False(t, acc.Balance().IsNegative())
}

func TestTransactionsMatching(t *testing.T) {
	t.Parallel()
	acc := account.New(101)
	require.NoError(t, acc.Deposit(dec("1000")))
	require.NoError(t, acc.Withdraw(dec("300")))
	require.NoError(t, acc.Deposit(dec("20")))

	t.Run("no filter returns full log", func(t *testing.T) {
		seq, err := acc.TransactionsMatching(account.KindAny)
		require.NoError(t, err)
		assert.Equal(t, []account.Kind{
			account.KindCreation, account.KindDeposit, account.KindWithdrawal, account.KindDeposit,
		}, kinds(seq))
	})

	t.Run("deposits only", func(t *testing.T) {
		seq, err := acc.TransactionsMatching(account.KindDeposit)
		require.NoError(t, err)
		txs := slices.Collect(seq)
		require.Len(t, txs, 2)
		assert.True(t, txs[0].Amount.Equal(dec("1000")))
		assert.True(t, txs[1].Amount.Equal(dec("20")))
	})

	t.Run("restartable", func(t *testing.T) {
		seq, err := acc.TransactionsMatching(account.KindWithdrawal)
		require.NoError(t, err)
		assert.Len(t, slices.Collect(seq), 1)
		assert.Len(t, slices.Collect(seq), 1)
	})

	t.Run("early stop", func(t *testing.T) {
		n := 0
		for range acc.Transactions() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	t.Run("unknown kind", func(t *testing.T) {
		seq, err := acc.TransactionsMatching(account.Kind("refund"))
		assert.ErrorIs(t, err, account.ErrUnknownTransactionKind)
		assert.Nil(t, seq)
	})
}

func TestTransactionsMatching_ReflectsLaterAppends(t *testing.T) {
	t.Parallel()
	acc := account.New(1)
	seq, err := acc.TransactionsMatching(account.KindDeposit)
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(seq))

	require.NoError(t, acc.Deposit(dec("5")))
	assert.Len(t, slices.Collect(seq), 1)
}

func TestTransactionsMatching_SnapshotDuringTraversal(t *testing.T) {
	t.Parallel()
	acc := account.New(1)
	require.NoError(t, acc.Deposit(dec("5")))

	n := 0
	for range acc.Transactions() {
		n++
		require.NoError(t, acc.Deposit(dec("1")))
	}
	assert.Equal(t, 2, n)
	assert.Equal(t, 4, acc.Len())
}

func TestParseKind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want account.Kind
		err  bool
	}{
		{"", account.KindAny, false},
		{"all", account.KindAny, false},
		{"Deposit", account.KindDeposit, false},
		{" withdrawal ", account.KindWithdrawal, false},
		{"creation", account.KindCreation, false},
		{"transfer", account.KindAny, true},
	}
	for _, tt := range tests {
		got, err := account.ParseKind(tt.in)
		if tt.err {
			assert.ErrorIs(t, err, account.ErrUnknownTransactionKind, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestDecoratorAppliedToEveryMutation(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	clock := func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }
	acc := account.New(1, account.WithDecorator(
		decorator.NewNotifier(&buf, decorator.WithNotifierClock(clock)),
	))

	require.NoError(t, acc.Deposit(dec("10")))
	assert.ErrorIs(t, acc.Withdraw(dec("99")), account.ErrInsufficientFunds)

	assert.Equal(t,
		"[2025-03-04 05:06:07] Transaction performed: Account Creation\n"+
			"[2025-03-04 05:06:07] Transaction performed: Deposit\n"+
			"[2025-03-04 05:06:07] Transaction performed: Withdrawal\n",
		buf.String())
}

func TestConcurrentDepositsAndWithdrawals(t *testing.T) {
	t.Parallel()
	acc := account.New(1)
	require.NoError(t, acc.Deposit(dec("100")))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(2 * workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, acc.Deposit(dec("1")))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, acc.Withdraw(dec("1")))
		}()
	}
	wg.Wait()

	sum := decimal.Zero
	for tx := range acc.Transactions() {
		sum = sum.Add(tx.Signed())
	}
	assert.True(t, acc.Balance().Equal(dec("100")))
	assert.True(t, sum.Equal(acc.Balance()))
	assert.Equal(t, 2+2*workers, acc.Len())
}
