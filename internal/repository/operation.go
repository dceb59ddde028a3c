package repository

import (
	"context"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
)

// OperationTx records completed operations for replay and history
type OperationTx interface {
	// GetOperation returns nil, nil when no record exists
	GetOperation(ctx context.Context, accountID, requestID string) (*domain.OperationRecord, error)
	SaveOperation(ctx context.Context, rec *domain.OperationRecord) error
}
