package repository

import (
	"context"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
)

// LedgerTx is the balance side of a transaction
type LedgerTx interface {
	// GetAccountForUpdate returns domain.ErrAccountNotFound when the account does not exist
	GetAccountForUpdate(ctx context.Context, accountID string) (*domain.Account, error)
	// UpdateBalance writes balance if the stored version still equals expectedVersion
	// and bumps the version. It returns the number of rows affected.
	UpdateBalance(ctx context.Context, accountID string, balance, expectedVersion int64) (int64, error)
}
