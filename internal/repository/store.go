package repository

import (
	"context"
	"time"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
)

// Store is the persistence boundary of the coordinator. Only the coordinator
// holds a Store; engines never see it.
type Store interface {
	BeginTx(ctx context.Context) (Tx, error)

	// CreateAccount inserts an account with a zero balance. An existing account is returned unchanged.
	CreateAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	ListOwnedItems(ctx context.Context, accountID string) ([]domain.OwnedItem, error)
	// ListOperations returns the newest records first
	ListOperations(ctx context.Context, accountID string, limit int) ([]domain.OperationRecord, error)
	// PurgeOperations deletes records created before the cutoff
	PurgeOperations(ctx context.Context, before time.Time) (int64, error)
}
