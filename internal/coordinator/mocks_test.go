package coordinator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/repository"
)

// MockStore
type MockStore struct {
	mock.Mock
}

func (m *MockStore) BeginTx(ctx context.Context) (repository.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Tx), args.Error(1)
}

func (m *MockStore) CreateAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockStore) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockStore) ListOwnedItems(ctx context.Context, accountID string) ([]domain.OwnedItem, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedItem), args.Error(1)
}

func (m *MockStore) ListOperations(ctx context.Context, accountID string, limit int) ([]domain.OperationRecord, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OperationRecord), args.Error(1)
}

func (m *MockStore) PurgeOperations(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// MockTx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) LockAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockTx) GetAccountForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockTx) UpdateBalance(ctx context.Context, accountID string, balance, expectedVersion int64) (int64, error) {
	args := m.Called(ctx, accountID, balance, expectedVersion)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTx) GetOwnedItemsForUpdate(ctx context.Context, accountID string, ids []uuid.UUID) ([]domain.OwnedItem, error) {
	args := m.Called(ctx, accountID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedItem), args.Error(1)
}

func (m *MockTx) ListOwnedItemsForUpdate(ctx context.Context, accountID string) ([]domain.OwnedItem, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedItem), args.Error(1)
}

func (m *MockTx) InsertOwnedItem(ctx context.Context, item *domain.OwnedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockTx) DeleteOwnedItems(ctx context.Context, accountID string, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, accountID, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTx) GetOperation(ctx context.Context, accountID, requestID string) (*domain.OperationRecord, error) {
	args := m.Called(ctx, accountID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperationRecord), args.Error(1)
}

func (m *MockTx) SaveOperation(ctx context.Context, rec *domain.OperationRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
