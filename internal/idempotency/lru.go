package idempotency

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
)

// LRUStore is an in-process Store with size and age bounds
type LRUStore struct {
	lru *expirable.LRU[string, cachedEntry]
}

// NewLRUStore creates an LRUStore. Non-positive arguments use the defaults.
func NewLRUStore(size int, ttl time.Duration) *LRUStore {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &LRUStore{lru: expirable.NewLRU[string, cachedEntry](size, nil, ttl)}
}

func (s *LRUStore) Get(_ context.Context, accountID, requestID string) (*domain.OperationRecord, bool, error) {
	key := Key(accountID, requestID)
	entry, ok := s.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if entry.Version != CacheSchemaVersion {
		s.lru.Remove(key)
		return nil, false, nil
	}
	rec := entry.Record
	return &rec, true, nil
}

func (s *LRUStore) Put(_ context.Context, rec domain.OperationRecord) error {
	s.lru.Add(Key(rec.AccountID, rec.RequestID), cachedEntry{Version: CacheSchemaVersion, Record: rec})
	return nil
}

// Len returns the number of cached records
func (s *LRUStore) Len() int {
	return s.lru.Len()
}
