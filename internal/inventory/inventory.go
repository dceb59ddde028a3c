// Package inventory moves owned item instances in and out of an account
// inside a store transaction.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/repository"
)

// Owned loads the instances in ids and verifies accountID owns every one.
// The result is ordered like ids. Nothing is modified.
func Owned(ctx context.Context, tx repository.InventoryTx, accountID string, ids []uuid.UUID) ([]domain.OwnedItem, error) {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, domain.ErrDuplicateSelection
		}
		seen[id] = struct{}{}
	}

	found, err := tx.GetOwnedItemsForUpdate(ctx, accountID, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadItems, err)
	}

	byID := make(map[uuid.UUID]domain.OwnedItem, len(found))
	for _, it := range found {
		if it.AccountID == accountID {
			byID[it.InstanceID] = it
		}
	}

	out := make([]domain.OwnedItem, 0, len(ids))
	for _, id := range ids {
		it, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
		}
		out = append(out, it)
	}
	return out, nil
}

// Take verifies ownership of ids, removes them and returns the removed records
func Take(ctx context.Context, tx repository.InventoryTx, accountID string, ids []uuid.UUID) ([]domain.OwnedItem, error) {
	items, err := Owned(ctx, tx, accountID, ids)
	if err != nil {
		return nil, err
	}
	if err := remove(ctx, tx, accountID, ids); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgItemsTaken, "account_id", accountID, "count", len(items))
	return items, nil
}

// TakeAll removes every instance the account owns
func TakeAll(ctx context.Context, tx repository.InventoryTx, accountID string) ([]domain.OwnedItem, error) {
	items, err := tx.ListOwnedItemsForUpdate(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadItems, err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.InstanceID
	}
	if err := remove(ctx, tx, accountID, ids); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgItemsTaken, "account_id", accountID, "count", len(items))
	return items, nil
}

// Grant mints a fresh instance of each item for accountID
func Grant(ctx context.Context, tx repository.InventoryTx, accountID string, source domain.ItemSource, items ...domain.Item) ([]domain.OwnedItem, error) {
	now := time.Now().UTC()
	out := make([]domain.OwnedItem, 0, len(items))
	for _, it := range items {
		owned := domain.OwnedItem{
			InstanceID: uuid.New(),
			AccountID:  accountID,
			Item:       it,
			Source:     source,
			AcquiredAt: now,
		}
		if err := tx.InsertOwnedItem(ctx, &owned); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextInsertItem, err)
		}
		out = append(out, owned)
	}
	logger.FromContext(ctx).Debug(LogMsgItemsGranted, "account_id", accountID, "count", len(out), "source", source)
	return out, nil
}

func remove(ctx context.Context, tx repository.InventoryTx, accountID string, ids []uuid.UUID) error {
	n, err := tx.DeleteOwnedItems(ctx, accountID, ids)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextDeleteItems, err)
	}
	if n != int64(len(ids)) {
		logger.FromContext(ctx).Warn(LogMsgDeleteMismatch, "account_id", accountID, "expected", len(ids), "deleted", n)
		return domain.ErrConcurrentConflict
	}
	return nil
}
