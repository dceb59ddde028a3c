package scheduler

// ============================================================================
// Error Contexts
// ============================================================================

// ErrContextParseSpec wraps cron parse failures
const ErrContextParseSpec = "invalid schedule"

// ============================================================================
// Log Messages
// ============================================================================

// Log messages for scheduling
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgTickSkipped  = "Scheduled tick skipped, worker queue full"
)
