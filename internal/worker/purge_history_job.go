package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
)

// HistoryPurger deletes operation records created before a cutoff
type HistoryPurger interface {
	PurgeOperations(ctx context.Context, before time.Time) (int64, error)
}

// PurgeHistoryJob deletes operation records older than Retention.
// Purged request IDs are no longer replayable; a retry after that point runs
// as a new operation.
type PurgeHistoryJob struct {
	store     HistoryPurger
	retention time.Duration
	now       func() time.Time
}

// NewPurgeHistoryJob creates a purge job. A non-positive retention uses DefaultHistoryRetention.
func NewPurgeHistoryJob(store HistoryPurger, retention time.Duration) *PurgeHistoryJob {
	if retention <= 0 {
		retention = DefaultHistoryRetention
	}
	return &PurgeHistoryJob{store: store, retention: retention, now: time.Now}
}

// Name implements Named
func (j *PurgeHistoryJob) Name() string { return JobNamePurgeHistory }

// Process implements Job
func (j *PurgeHistoryJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	cutoff := j.now().UTC().Add(-j.retention)

	log.Info(LogMsgPurgeHistoryStarting, "cutoff", cutoff)

	n, err := j.store.PurgeOperations(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextPurgeHistory, err)
	}

	log.Info(LogMsgPurgeHistoryCompleted, "records_deleted", n)
	return nil
}
