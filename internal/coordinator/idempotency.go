package coordinator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
)

// replayCached answers a retried request from the cache without touching the store.
// Cache errors and records of another kind fall through to the transactional check,
// which is authoritative.
func replayCached[T any](ctx context.Context, s *service, op operation[T]) (*T, bool) {
	if s.cache == nil {
		return nil, false
	}
	rec, ok, err := s.cache.Get(ctx, op.accountID, op.requestID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgCacheGetFailed, "error", err)
		return nil, false
	}
	if !ok || rec.Kind != op.kind {
		return nil, false
	}
	out, err := decodeRecord[T](rec, op.kind)
	if err != nil {
		return nil, false
	}
	logger.FromContext(ctx).Info(LogMsgOperationReplayed, "op_request_id", op.requestID, "cached", true)
	return out, true
}

// decodeRecord rebuilds a stored outcome. A record of a different kind means the
// client reused a request ID.
func decodeRecord[T any](rec *domain.OperationRecord, kind domain.OperationKind) (*T, error) {
	if rec.Kind != kind {
		return nil, fmt.Errorf("%s %q: %w", rec.Kind, rec.RequestID, domain.ErrRequestIDReused)
	}
	var out T
	if err := json.Unmarshal(rec.Payload, &out); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ErrContextDecodeOutcome, domain.ErrPersistenceFailure, err)
	}
	return &out, nil
}

func (s *service) remember(ctx context.Context, rec domain.OperationRecord) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, rec); err != nil {
		logger.FromContext(ctx).Warn(LogMsgCachePutFailed, "error", err)
	}
}
