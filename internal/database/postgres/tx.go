package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
)

// Tx implements repository.Tx over a pgx transaction
type Tx struct {
	tx pgx.Tx
}

// LockAccount takes a transaction-scoped advisory lock on the account.
// It is released by Commit or Rollback.
func (t *Tx) LockAccount(ctx context.Context, accountID string) error {
	if _, err := t.tx.Exec(ctx, SQLAdvisoryLock, accountLockKey(accountID)); err != nil {
		return wrap(ErrMsgAcquireLockFailed, err)
	}
	return nil
}

// GetAccountForUpdate locks and returns the account row
func (t *Tx) GetAccountForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	acct, err := scanAccount(t.tx.QueryRow(ctx, SQLSelectAccountForUpdate, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, wrap(ErrMsgGetAccountFailed, err)
	}
	return acct, nil
}

// UpdateBalance writes balance if the row is still at expectedVersion
func (t *Tx) UpdateBalance(ctx context.Context, accountID string, balance, expectedVersion int64) (int64, error) {
	tag, err := t.tx.Exec(ctx, SQLUpdateBalance, accountID, balance, expectedVersion)
	if err != nil {
		return 0, wrap(ErrMsgUpdateBalanceFailed, err)
	}
	return tag.RowsAffected(), nil
}

// GetOwnedItemsForUpdate locks and returns the instances in ids that accountID owns
func (t *Tx) GetOwnedItemsForUpdate(ctx context.Context, accountID string, ids []uuid.UUID) ([]domain.OwnedItem, error) {
	rows, err := t.tx.Query(ctx, SQLSelectOwnedItemsByIDForUpdate, accountID, uuidStrings(ids))
	if err != nil {
		return nil, wrap(ErrMsgListItemsFailed, err)
	}
	items, err := scanOwnedItems(rows)
	if err != nil {
		return nil, wrap(ErrMsgListItemsFailed, err)
	}
	return items, nil
}

// ListOwnedItemsForUpdate locks and returns the whole inventory
func (t *Tx) ListOwnedItemsForUpdate(ctx context.Context, accountID string) ([]domain.OwnedItem, error) {
	rows, err := t.tx.Query(ctx, SQLSelectOwnedItemsForUpdate, accountID)
	if err != nil {
		return nil, wrap(ErrMsgListItemsFailed, err)
	}
	items, err := scanOwnedItems(rows)
	if err != nil {
		return nil, wrap(ErrMsgListItemsFailed, err)
	}
	return items, nil
}

// InsertOwnedItem stores a new instance
func (t *Tx) InsertOwnedItem(ctx context.Context, item *domain.OwnedItem) error {
	_, err := t.tx.Exec(ctx, SQLInsertOwnedItem,
		item.InstanceID, item.AccountID, item.Item.ID, item.Item.Name, item.Item.Price,
		string(item.Item.Rarity), item.Item.Wear, string(item.Source), item.AcquiredAt)
	if err != nil {
		return wrap(ErrMsgInsertItemFailed, err)
	}
	return nil
}

// DeleteOwnedItems removes instances owned by accountID
func (t *Tx) DeleteOwnedItems(ctx context.Context, accountID string, ids []uuid.UUID) (int64, error) {
	tag, err := t.tx.Exec(ctx, SQLDeleteOwnedItems, accountID, uuidStrings(ids))
	if err != nil {
		return 0, wrap(ErrMsgDeleteItemsFailed, err)
	}
	return tag.RowsAffected(), nil
}

// GetOperation returns nil, nil when no record exists
func (t *Tx) GetOperation(ctx context.Context, accountID, requestID string) (*domain.OperationRecord, error) {
	rec, err := scanOperation(t.tx.QueryRow(ctx, SQLSelectOperation, accountID, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(ErrMsgGetOperationFailed, err)
	}
	return rec, nil
}

// SaveOperation stores the outcome of a completed operation
func (t *Tx) SaveOperation(ctx context.Context, rec *domain.OperationRecord) error {
	_, err := t.tx.Exec(ctx, SQLInsertOperation,
		rec.AccountID, rec.RequestID, string(rec.Kind), []byte(rec.Payload), rec.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return domain.ErrConcurrentConflict
		}
		return wrap(ErrMsgSaveOperationFailed, err)
	}
	return nil
}

// Commit commits the transaction
func (t *Tx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return wrap(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback aborts the transaction. Rolling back a finished transaction
// returns domain.ErrTxClosed.
func (t *Tx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return err
	}
	return nil
}
