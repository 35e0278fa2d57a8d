package wallet

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupWallet(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:wallet_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewService(db)
}

func TestGetCreatesEmptyWallet(t *testing.T) {
	svc := setupWallet(t)

	w, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.BalanceCents)
	assert.Equal(t, "USD", w.Currency)

	again, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, w.ID, again.ID)
}

func TestLedgerBalanceChain(t *testing.T) {
	svc := setupWallet(t)
	ctx := context.Background()

	ops := []struct {
		kind  TransactionKind
		delta int64
	}{
		{KindTopup, 10000},
		{KindWithdraw, -2500},
		{KindTopup, 500},
		{KindWithdraw, -8000},
	}
	for i, op := range ops {
		var err error
		if op.delta > 0 {
			_, err = svc.Topup(ctx, "u1", TopupRequest{AmountCents: op.delta})
		} else {
			_, err = svc.Withdraw(ctx, "u1", WithdrawRequest{AmountCents: -op.delta})
		}
		require.NoError(t, err, "op %d", i)
	}

	entries, err := svc.History(ctx, "u1", 50, 0)
	require.NoError(t, err)
	require.Len(t, entries, len(ops))

	// History is newest first; replay oldest first and check every
	// balance_after equals the running sum.
	var running int64
	for i := len(entries) - 1; i >= 0; i-- {
		running += entries[i].AmountCents
		assert.Equal(t, running, entries[i].BalanceAfterCents)
	}

	w, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, running, w.BalanceCents)
	assert.Equal(t, int64(0), w.BalanceCents)
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	svc := setupWallet(t)
	ctx := context.Background()

	_, err := svc.Topup(ctx, "u1", TopupRequest{AmountCents: 1000})
	require.NoError(t, err)

	_, err = svc.Withdraw(ctx, "u1", WithdrawRequest{AmountCents: 1001})
	assert.True(t, errors.Is(err, ErrInsufficientFunds))

	w, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), w.BalanceCents, "failed withdrawal must not move the balance")

	entries, err := svc.History(ctx, "u1", 50, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "failed withdrawal must not leave a ledger entry")
}

func TestTopupIdempotency(t *testing.T) {
	svc := setupWallet(t)
	ctx := context.Background()

	first, err := svc.Topup(ctx, "u1", TopupRequest{AmountCents: 5000, IdempotencyKey: "req-1"})
	require.NoError(t, err)

	second, err := svc.Topup(ctx, "u1", TopupRequest{AmountCents: 5000, IdempotencyKey: "req-1"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	w, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), w.BalanceCents, "retried topup credits only once")
}

func TestPayAndRefundInsideTransaction(t *testing.T) {
	svc := setupWallet(t)
	ctx := context.Background()

	_, err := svc.Topup(ctx, "u1", TopupRequest{AmountCents: 8500})
	require.NoError(t, err)

	err = svc.db.Transaction(func(tx *gorm.DB) error {
		_, payErr := svc.Pay(ctx, tx, "u1", 8500, "USD", "booking:b1")
		return payErr
	})
	require.NoError(t, err)

	w, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.BalanceCents)

	err = svc.db.Transaction(func(tx *gorm.DB) error {
		_, refundErr := svc.Refund(ctx, tx, "u1", 8500, "USD", "booking:b1")
		return refundErr
	})
	require.NoError(t, err)

	w, err = svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(8500), w.BalanceCents)
}

func TestPayRollsBackWithEnclosingTransaction(t *testing.T) {
	svc := setupWallet(t)
	ctx := context.Background()

	_, err := svc.Topup(ctx, "u1", TopupRequest{AmountCents: 3000})
	require.NoError(t, err)

	boom := errors.New("downstream failure")
	err = svc.db.Transaction(func(tx *gorm.DB) error {
		if _, payErr := svc.Pay(ctx, tx, "u1", 3000, "USD", "booking:b2"); payErr != nil {
			return payErr
		}
		return boom
	})
	assert.True(t, errors.Is(err, boom))

	w, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3000), w.BalanceCents, "rolled back payment must not debit")
}

func TestNegativeAmountsRejected(t *testing.T) {
	svc := setupWallet(t)
	ctx := context.Background()

	_, err := svc.Topup(ctx, "u1", TopupRequest{AmountCents: -5})
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = svc.Withdraw(ctx, "u1", WithdrawRequest{AmountCents: 0})
	assert.True(t, errors.Is(err, ErrValidation))
}
