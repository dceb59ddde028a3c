package coordinator

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/event"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/inventory"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/ledger"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/repository"
)

// SellRequest sells the selected owned items back for their catalog price
type SellRequest struct {
	RequestID string
	AccountID string
	ItemIDs   []uuid.UUID
}

// SellAllRequest sells every item the account owns
type SellAllRequest struct {
	RequestID string
	AccountID string
}

// SellItems removes the selected items and credits their total price
func (s *service) SellItems(ctx context.Context, req SellRequest) (*domain.SaleOutcome, error) {
	if len(req.ItemIDs) == 0 {
		return nil, domain.ErrNothingToSell
	}
	return s.sell(ctx, req.RequestID, req.AccountID, func(ctx context.Context, tx repository.Tx) ([]domain.OwnedItem, error) {
		return inventory.Take(ctx, tx, req.AccountID, req.ItemIDs)
	})
}

// SellAll removes every owned item and credits their total price
func (s *service) SellAll(ctx context.Context, req SellAllRequest) (*domain.SaleOutcome, error) {
	return s.sell(ctx, req.RequestID, req.AccountID, func(ctx context.Context, tx repository.Tx) ([]domain.OwnedItem, error) {
		items, err := inventory.TakeAll(ctx, tx, req.AccountID)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, domain.ErrNothingToSell
		}
		return items, nil
	})
}

func (s *service) sell(ctx context.Context, requestID, accountID string, take func(context.Context, repository.Tx) ([]domain.OwnedItem, error)) (*domain.SaleOutcome, error) {
	return execute(ctx, s, operation[domain.SaleOutcome]{
		kind:      domain.OperationSell,
		accountID: accountID,
		requestID: requestID,
		apply: func(ctx context.Context, tx repository.Tx, requestID string) (*domain.SaleOutcome, error) {
			if _, err := tx.GetAccountForUpdate(ctx, accountID); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextGetAccount, err)
			}

			sold, err := take(ctx, tx)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextTakeItems, err)
			}

			var total int64
			for _, it := range sold {
				total += it.Item.Price
			}

			acct, err := ledger.Credit(ctx, tx, accountID, total)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextCredit, err)
			}

			return &domain.SaleOutcome{
				RequestID: requestID,
				Sold:      sold,
				Credited:  total,
				Balance:   acct.Balance,
			}, nil
		},
		event: func(o *domain.SaleOutcome) event.Event {
			return event.NewItemsSoldEvent(accountID, o)
		},
	})
}
