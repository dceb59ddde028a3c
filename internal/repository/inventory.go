package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
)

// InventoryTx is the owned-item side of a transaction
type InventoryTx interface {
	// GetOwnedItemsForUpdate returns the subset of ids owned by accountID, in no particular order
	GetOwnedItemsForUpdate(ctx context.Context, accountID string, ids []uuid.UUID) ([]domain.OwnedItem, error)
	ListOwnedItemsForUpdate(ctx context.Context, accountID string) ([]domain.OwnedItem, error)
	InsertOwnedItem(ctx context.Context, item *domain.OwnedItem) error
	// DeleteOwnedItems removes the instances owned by accountID and returns how many were removed
	DeleteOwnedItems(ctx context.Context, accountID string, ids []uuid.UUID) (int64, error)
}
