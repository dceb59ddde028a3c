package coordinator

import (
	"context"
	"fmt"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/event"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/inventory"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/ledger"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/repository"
)

// OpenCaseRequest buys one draw from Case
type OpenCaseRequest struct {
	RequestID string
	AccountID string
	Case      domain.Case
}

// OpenCase debits the case price, draws an item and grants it
func (s *service) OpenCase(ctx context.Context, req OpenCaseRequest) (*domain.DropOutcome, error) {
	if err := req.Case.Validate(); err != nil {
		return nil, err
	}

	return execute(ctx, s, operation[domain.DropOutcome]{
		kind:      domain.OperationOpenCase,
		accountID: req.AccountID,
		requestID: req.RequestID,
		apply: func(ctx context.Context, tx repository.Tx, requestID string) (*domain.DropOutcome, error) {
			acct, err := ledger.Debit(ctx, tx, req.AccountID, req.Case.Price)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextDebit, err)
			}

			res, err := s.drops.Draw(req.Case.Items, req.Case.Price)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextDraw, err)
			}

			granted, err := inventory.Grant(ctx, tx, req.AccountID, domain.SourceCase, res.Item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextGrantItems, err)
			}

			return &domain.DropOutcome{
				RequestID: requestID,
				CaseID:    req.Case.ID,
				Price:     req.Case.Price,
				Tier:      res.Tier,
				Item:      granted[0],
				Balance:   acct.Balance,
				Reel:      s.drops.BuildReel(req.Case.Items, res.Item),
			}, nil
		},
		event: func(o *domain.DropOutcome) event.Event {
			return event.NewCaseOpenedEvent(req.AccountID, o)
		},
	})
}
