// Package ledger applies balance changes to an account inside a store
// transaction. Balances never go negative: a debit larger than the balance
// fails before anything is written.
package ledger

import (
	"context"
	"fmt"
	"math"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/repository"
)

// Debit removes amount from the account and returns the updated account
func Debit(ctx context.Context, tx repository.LedgerTx, accountID string, amount int64) (*domain.Account, error) {
	if amount < 0 {
		return nil, domain.ErrInvalidAmount
	}
	acct, err := load(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}
	if acct.Balance < amount {
		return nil, domain.ErrInsufficientBalance
	}
	if err := write(ctx, tx, acct, acct.Balance-amount); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgDebited, "account_id", accountID, "amount", amount, "balance", acct.Balance)
	return acct, nil
}

// Credit adds amount to the account and returns the updated account
func Credit(ctx context.Context, tx repository.LedgerTx, accountID string, amount int64) (*domain.Account, error) {
	if amount < 0 {
		return nil, domain.ErrInvalidAmount
	}
	acct, err := load(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}
	if amount > math.MaxInt64-acct.Balance {
		return nil, fmt.Errorf("%s: %w", ErrContextBalanceOverflow, domain.ErrInvalidAmount)
	}
	if err := write(ctx, tx, acct, acct.Balance+amount); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgCredited, "account_id", accountID, "amount", amount, "balance", acct.Balance)
	return acct, nil
}

// Balance returns the current balance as seen by tx
func Balance(ctx context.Context, tx repository.LedgerTx, accountID string) (int64, error) {
	acct, err := load(ctx, tx, accountID)
	if err != nil {
		return 0, err
	}
	return acct.Balance, nil
}

func load(ctx context.Context, tx repository.LedgerTx, accountID string) (*domain.Account, error) {
	acct, err := tx.GetAccountForUpdate(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadAccount, err)
	}
	if acct == nil {
		return nil, domain.ErrAccountNotFound
	}
	return acct, nil
}

// write stores the new balance under the version read by load and advances acct in place
func write(ctx context.Context, tx repository.LedgerTx, acct *domain.Account, balance int64) error {
	rows, err := tx.UpdateBalance(ctx, acct.ID, balance, acct.Version)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextUpdateBalance, err)
	}
	if rows == 0 {
		logger.FromContext(ctx).Warn(LogMsgVersionConflict, "account_id", acct.ID, "version", acct.Version)
		return domain.ErrConcurrentConflict
	}
	acct.Balance = balance
	acct.Version++
	return nil
}
