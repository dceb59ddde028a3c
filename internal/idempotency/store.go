// Package idempotency caches completed operation records so a retried
// request can be answered without opening a store transaction. The store's
// operations table stays the source of truth; a cache miss is never an error.
package idempotency

import (
	"context"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
)

// Store is a cache of completed operations keyed by account and request
type Store interface {
	Get(ctx context.Context, accountID, requestID string) (*domain.OperationRecord, bool, error)
	Put(ctx context.Context, rec domain.OperationRecord) error
}

// Key builds the cache key for an operation
func Key(accountID, requestID string) string {
	return accountID + KeySeparator + requestID
}

// cachedEntry wraps a record with version metadata for cache invalidation
type cachedEntry struct {
	Version string                 `json:"version"`
	Record  domain.OperationRecord `json:"record"`
}
