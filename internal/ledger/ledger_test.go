package ledger

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
)

type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) GetAccountForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerTx) UpdateBalance(ctx context.Context, accountID string, balance, expectedVersion int64) (int64, error) {
	args := m.Called(ctx, accountID, balance, expectedVersion)
	return args.Get(0).(int64), args.Error(1)
}

func TestDebit_Success(t *testing.T) {
	ctx := context.Background()
	tx := new(MockLedgerTx)
	tx.On("GetAccountForUpdate", ctx, "acct").Return(&domain.Account{ID: "acct", Balance: 500, Version: 3}, nil)
	tx.On("UpdateBalance", ctx, "acct", int64(270), int64(3)).Return(int64(1), nil)

	acct, err := Debit(ctx, tx, "acct", 230)
	require.NoError(t, err)
	assert.Equal(t, int64(270), acct.Balance)
	assert.Equal(t, int64(4), acct.Version)
	tx.AssertExpectations(t)
}

func TestDebit_ExactBalance(t *testing.T) {
	ctx := context.Background()
	tx := new(MockLedgerTx)
	tx.On("GetAccountForUpdate", ctx, "acct").Return(&domain.Account{ID: "acct", Balance: 230}, nil)
	tx.On("UpdateBalance", ctx, "acct", int64(0), int64(0)).Return(int64(1), nil)

	acct, err := Debit(ctx, tx, "acct", 230)
	require.NoError(t, err)
	assert.Zero(t, acct.Balance)
}

func TestDebit_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	tx := new(MockLedgerTx)
	tx.On("GetAccountForUpdate", ctx, "acct").Return(&domain.Account{ID: "acct", Balance: 229}, nil)

	_, err := Debit(ctx, tx, "acct", 230)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	tx.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDebit_VersionConflict(t *testing.T) {
	ctx := context.Background()
	tx := new(MockLedgerTx)
	tx.On("GetAccountForUpdate", ctx, "acct").Return(&domain.Account{ID: "acct", Balance: 500, Version: 7}, nil)
	tx.On("UpdateBalance", ctx, "acct", int64(400), int64(7)).Return(int64(0), nil)

	_, err := Debit(ctx, tx, "acct", 100)
	assert.ErrorIs(t, err, domain.ErrConcurrentConflict)
}

func TestDebit_NegativeAmount(t *testing.T) {
	_, err := Debit(context.Background(), new(MockLedgerTx), "acct", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestCredit(t *testing.T) {
	ctx := context.Background()
	tx := new(MockLedgerTx)
	tx.On("GetAccountForUpdate", ctx, "acct").Return(&domain.Account{ID: "acct", Balance: 10, Version: 1}, nil)
	tx.On("UpdateBalance", ctx, "acct", int64(130), int64(1)).Return(int64(1), nil)

	acct, err := Credit(ctx, tx, "acct", 120)
	require.NoError(t, err)
	assert.Equal(t, int64(130), acct.Balance)
}

func TestCredit_Overflow(t *testing.T) {
	ctx := context.Background()
	tx := new(MockLedgerTx)
	tx.On("GetAccountForUpdate", ctx, "acct").Return(&domain.Account{ID: "acct", Balance: math.MaxInt64 - 5}, nil)

	_, err := Credit(ctx, tx, "acct", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.NotErrorIs(t, err, domain.ErrInsufficientBalance)
	tx.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCredit_UpToMaxBalance(t *testing.T) {
	ctx := context.Background()
	tx := new(MockLedgerTx)
	tx.On("GetAccountForUpdate", ctx, "acct").Return(&domain.Account{ID: "acct", Balance: math.MaxInt64 - 5}, nil)
	tx.On("UpdateBalance", ctx, "acct", int64(math.MaxInt64), int64(0)).Return(int64(1), nil)

	acct, err := Credit(ctx, tx, "acct", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), acct.Balance)
}

func TestCredit_AccountMissing(t *testing.T) {
	ctx := context.Background()
	tx := new(MockLedgerTx)
	tx.On("GetAccountForUpdate", ctx, "ghost").Return(nil, domain.ErrAccountNotFound)

	_, err := Credit(ctx, tx, "ghost", 5)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestCredit_StoreFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")
	tx := new(MockLedgerTx)
	tx.On("GetAccountForUpdate", ctx, "acct").Return(&domain.Account{ID: "acct"}, nil)
	tx.On("UpdateBalance", ctx, "acct", int64(5), int64(0)).Return(int64(0), boom)

	_, err := Credit(ctx, tx, "acct", 5)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), ErrContextUpdateBalance)
}

func TestBalance(t *testing.T) {
	ctx := context.Background()
	tx := new(MockLedgerTx)
	tx.On("GetAccountForUpdate", ctx, "acct").Return(&domain.Account{ID: "acct", Balance: 42}, nil)

	b, err := Balance(ctx, tx, "acct")
	require.NoError(t, err)
	assert.Equal(t, int64(42), b)
}
