package coordinator

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/event"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/inventory"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/repository"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/upgrade"
)

// UpgradeRequest stakes an owned item for Target.
// Chance is optional. When set it must lie within [upgrade.MinChance,
// upgrade.MaxChance] and select Target via upgrade.TargetForChance. The trial
// always runs at the chance derived from the two prices.
type UpgradeRequest struct {
	RequestID    string
	AccountID    string
	SourceItemID uuid.UUID
	Target       domain.Item
	Chance       int
}

// Upgrade removes the source item, runs one trial and grants a copy of the
// target on success. A failed trial forfeits the source.
func (s *service) Upgrade(ctx context.Context, req UpgradeRequest) (*domain.UpgradeOutcome, error) {
	if req.Target.ID == "" {
		return nil, domain.ErrTargetNotFound
	}
	if req.Chance != 0 {
		if err := upgrade.ValidateChance(req.Chance); err != nil {
			return nil, err
		}
	}

	return execute(ctx, s, operation[domain.UpgradeOutcome]{
		kind:      domain.OperationUpgrade,
		accountID: req.AccountID,
		requestID: req.RequestID,
		apply: func(ctx context.Context, tx repository.Tx, requestID string) (*domain.UpgradeOutcome, error) {
			if _, err := tx.GetAccountForUpdate(ctx, req.AccountID); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextGetAccount, err)
			}

			owned, err := inventory.Owned(ctx, tx, req.AccountID, []uuid.UUID{req.SourceItemID})
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextLoadSourceItem, err)
			}
			source := owned[0]

			chance, err := upgrade.ResolveChance(source.Item, req.Target, s.outcomes.UpgradeTargets(), req.Chance)
			if err != nil {
				return nil, err
			}

			if _, err := inventory.Take(ctx, tx, req.AccountID, []uuid.UUID{source.InstanceID}); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextTakeItems, err)
			}

			res, err := s.upgrades.Upgrade(source.Item, req.Target, chance)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextUpgrade, err)
			}

			outcome := &domain.UpgradeOutcome{
				RequestID: requestID,
				Success:   res.Success,
				Chance:    res.Chance,
				Roll:      res.Value,
				Source:    source,
				Target:    req.Target,
			}
			if res.Success {
				granted, err := inventory.Grant(ctx, tx, req.AccountID, domain.SourceUpgrade, req.Target)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", ErrContextGrantItems, err)
				}
				outcome.Result = &granted[0]
			}
			return outcome, nil
		},
		event: func(o *domain.UpgradeOutcome) event.Event {
			return event.NewItemUpgradedEvent(req.AccountID, o)
		},
	})
}
