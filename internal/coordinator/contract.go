package coordinator

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/contract"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/event"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/inventory"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/repository"
)

// FuseRequest sacrifices ItemIDs for one contract result
type FuseRequest struct {
	RequestID string
	AccountID string
	ItemIDs   []uuid.UUID
}

// FuseContract removes exactly the selected items and grants one fused item
// drawn from the catalog outcome pool.
func (s *service) FuseContract(ctx context.Context, req FuseRequest) (*domain.FusionOutcome, error) {
	if err := contract.ValidateCount(len(req.ItemIDs)); err != nil {
		return nil, err
	}
	pool := s.outcomes.ContractOutcomes()
	if len(pool) == 0 {
		return nil, domain.ErrEmptyOutcomePool
	}

	return execute(ctx, s, operation[domain.FusionOutcome]{
		kind:      domain.OperationContract,
		accountID: req.AccountID,
		requestID: req.RequestID,
		apply: func(ctx context.Context, tx repository.Tx, requestID string) (*domain.FusionOutcome, error) {
			if _, err := tx.GetAccountForUpdate(ctx, req.AccountID); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextGetAccount, err)
			}

			inputs, err := inventory.Take(ctx, tx, req.AccountID, req.ItemIDs)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextTakeItems, err)
			}

			res, err := s.contracts.Fuse(domain.ItemsOf(inputs), pool)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextFuse, err)
			}

			granted, err := inventory.Grant(ctx, tx, req.AccountID, domain.SourceContract, res.Item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextGrantItems, err)
			}

			return &domain.FusionOutcome{
				RequestID:    requestID,
				Inputs:       inputs,
				Result:       granted[0],
				AveragePrice: res.AveragePrice,
				Bonus:        res.Bonus,
			}, nil
		},
		event: func(o *domain.FusionOutcome) event.Event {
			return event.NewContractFusedEvent(req.AccountID, o)
		},
	})
}
