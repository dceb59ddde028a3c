package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/repository"
)

// Store implements repository.Store for PostgreSQL
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a new Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// BeginTx starts a read-committed transaction. Writers serialize through
// LockAccount and row locks rather than the isolation level.
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, wrap(ErrMsgFailedToBeginTransaction, err)
	}
	return &Tx{tx: tx}, nil
}

// CreateAccount inserts the account if it does not exist and returns it
func (s *Store) CreateAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	if _, err := s.db.Exec(ctx, SQLInsertAccount, accountID); err != nil {
		return nil, wrap(ErrMsgCreateAccountFailed, err)
	}
	return s.GetAccount(ctx, accountID)
}

// GetAccount returns domain.ErrAccountNotFound when the account does not exist
func (s *Store) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	acct, err := scanAccount(s.db.QueryRow(ctx, SQLSelectAccount, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, wrap(ErrMsgGetAccountFailed, err)
	}
	return acct, nil
}

// ListOwnedItems returns the account's inventory, oldest first
func (s *Store) ListOwnedItems(ctx context.Context, accountID string) ([]domain.OwnedItem, error) {
	rows, err := s.db.Query(ctx, SQLSelectOwnedItems, accountID)
	if err != nil {
		return nil, wrap(ErrMsgListItemsFailed, err)
	}
	items, err := scanOwnedItems(rows)
	if err != nil {
		return nil, wrap(ErrMsgListItemsFailed, err)
	}
	return items, nil
}

// ListOperations returns up to limit records, newest first
func (s *Store) ListOperations(ctx context.Context, accountID string, limit int) ([]domain.OperationRecord, error) {
	rows, err := s.db.Query(ctx, SQLSelectOperations, accountID, limit)
	if err != nil {
		return nil, wrap(ErrMsgListOperationsFailed, err)
	}
	defer rows.Close()

	var out []domain.OperationRecord
	for rows.Next() {
		rec, err := scanOperation(rows)
		if err != nil {
			return nil, wrap(ErrMsgListOperationsFailed, err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(ErrMsgListOperationsFailed, err)
	}
	return out, nil
}

// PurgeOperations deletes operation records older than before
func (s *Store) PurgeOperations(ctx context.Context, before time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, SQLPurgeOperations, before)
	if err != nil {
		return 0, wrap(ErrMsgPurgeOperationsFailed, err)
	}
	return tag.RowsAffected(), nil
}

// Ping checks connectivity for readiness probes
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}
