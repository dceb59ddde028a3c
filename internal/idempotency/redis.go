package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
)

// RedisStore shares cached operations between service replicas
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore. A non-positive ttl uses DefaultTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(accountID, requestID string) string {
	return RedisKeyPrefix + Key(accountID, requestID)
}

func (s *RedisStore) Get(ctx context.Context, accountID, requestID string) (*domain.OperationRecord, bool, error) {
	raw, err := s.client.Get(ctx, redisKey(accountID, requestID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s: %w", ErrMsgRedisGetFailed, err)
	}

	var entry cachedEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
	}
	if entry.Version != CacheSchemaVersion {
		logger.FromContext(ctx).Debug(LogMsgCacheVersionSkew, "version", entry.Version)
		return nil, false, nil
	}
	return &entry.Record, true, nil
}

// Put stores rec unless a record for the same key is already cached
func (s *RedisStore) Put(ctx context.Context, rec domain.OperationRecord) error {
	raw, err := json.Marshal(cachedEntry{Version: CacheSchemaVersion, Record: rec})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeFailed, err)
	}
	if err := s.client.SetNX(ctx, redisKey(rec.AccountID, rec.RequestID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRedisSetFailed, err)
	}
	return nil
}

// Ping checks connectivity for readiness probes
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
