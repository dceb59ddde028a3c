package postgres

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
)

// accountLockKey creates a consistent int64 hash of an account ID for advisory locking
func accountLockKey(accountID string) int64 {
	h := sha256.Sum256([]byte(AccountLockNamespace + accountID))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}

// wrap annotates err with msg, translating lock contention and a negative
// balance into their domain errors
func wrap(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeSerializationFailure, PgErrorCodeDeadlockDetected, PgErrorCodeLockNotAvailable:
			return fmt.Errorf("%s: %w: %s", msg, domain.ErrConcurrentConflict, pgErr.Message)
		case PgErrorCodeCheckViolation:
			return fmt.Errorf("%s: %w", msg, domain.ErrInsufficientBalance)
		case PgErrorCodeForeignKeyViolation:
			return fmt.Errorf("%s: %w", msg, domain.ErrAccountNotFound)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	if err := row.Scan(&a.ID, &a.Balance, &a.Version, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func scanOwnedItems(rows pgx.Rows) ([]domain.OwnedItem, error) {
	defer rows.Close()

	var items []domain.OwnedItem
	for rows.Next() {
		var (
			it     domain.OwnedItem
			rarity string
			source string
		)
		if err := rows.Scan(&it.InstanceID, &it.AccountID, &it.Item.ID, &it.Item.Name, &it.Item.Price,
			&rarity, &it.Item.Wear, &source, &it.AcquiredAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScanItemFailed, err)
		}
		it.Item.Rarity = domain.Rarity(rarity)
		it.Source = domain.ItemSource(source)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanOperation(row pgx.Row) (*domain.OperationRecord, error) {
	var (
		rec     domain.OperationRecord
		kind    string
		payload []byte
	)
	if err := row.Scan(&rec.AccountID, &rec.RequestID, &kind, &payload, &rec.CreatedAt); err != nil {
		return nil, err
	}
	rec.Kind = domain.OperationKind(kind)
	rec.Payload = payload
	return &rec, nil
}
