package repository

import (
	"context"
)

// Tx is one store transaction. Every mutation of an account's balance or
// inventory happens inside a Tx that first calls LockAccount.
type Tx interface {
	// LockAccount serializes writers on accountID until the transaction ends
	LockAccount(ctx context.Context, accountID string) error

	LedgerTx
	InventoryTx
	OperationTx

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
