package event

import "time"

// ============================================================================
// Schema
// ============================================================================

// EventSchemaVersion is stamped on every published event
const EventSchemaVersion = "1.0"

// DeadLetterSchemaVersion is the format version of dead-letter lines
const DeadLetterSchemaVersion = "1.1"

// MetadataKeyAccountID carries the owning account on every event
const MetadataKeyAccountID = "account_id"

// ============================================================================
// Retry and Dead Letter
// ============================================================================

const (
	// RetryQueueBufferSize bounds pending retries; overflow goes straight to the dead letter
	RetryQueueBufferSize = 1000

	// RetryMaxDelay caps the exponential backoff
	RetryMaxDelay = 5 * time.Minute

	DeadLetterFilePermissions = 0o644
	DeadLetterDirPermissions  = 0o755

	// DeadLetterMaxLineBytes bounds one entry when reading the file back
	DeadLetterMaxLineBytes = 1 << 20
)

// ============================================================================
// Messages
// ============================================================================

const (
	ErrMsgDecodePayload  = "failed to decode event payload"
	ErrMsgOpenDeadLetter = "failed to open dead-letter file"
	ErrMsgReadDeadLetter = "failed to read dead-letter file"
)

const (
	LogMsgEventPublishFailed    = "Event publish failed, queued for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dead-lettered"
	LogMsgDeadLetterWriteFailed = "Dead-letter write failed"
	LogMsgEventDeadLettered     = "Event dead-lettered"
	LogMsgEventRetryExhausted   = "Event retries exhausted"
	LogMsgEventRetryFailed      = "Event retry failed"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgQueueDrainedShutdown  = "Retry queue drained on shutdown"
	LogMsgShutdownTimeout       = "Publisher shutdown timed out"
	LogMsgHandlerFailed         = "Event handler failed"
)

// CalculateRetryDelay doubles baseDelay per attempt, capped at RetryMaxDelay
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > 20 {
		return RetryMaxDelay
	}
	if d := baseDelay << (attempt - 1); d < RetryMaxDelay {
		return d
	}
	return RetryMaxDelay
}
