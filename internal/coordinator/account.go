package coordinator

import (
	"context"
	"fmt"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/event"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/ledger"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/repository"
)

// DepositRequest tops up an account balance
type DepositRequest struct {
	RequestID string
	AccountID string
	Amount    int64
}

// Deposit credits Amount to the account
func (s *service) Deposit(ctx context.Context, req DepositRequest) (*domain.DepositOutcome, error) {
	if req.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	return execute(ctx, s, operation[domain.DepositOutcome]{
		kind:      domain.OperationDeposit,
		accountID: req.AccountID,
		requestID: req.RequestID,
		apply: func(ctx context.Context, tx repository.Tx, requestID string) (*domain.DepositOutcome, error) {
			acct, err := ledger.Credit(ctx, tx, req.AccountID, req.Amount)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextCredit, err)
			}
			return &domain.DepositOutcome{
				RequestID: requestID,
				Amount:    req.Amount,
				Balance:   acct.Balance,
			}, nil
		},
		event: func(o *domain.DepositOutcome) event.Event {
			return event.NewBalanceDepositedEvent(req.AccountID, o)
		},
	})
}
