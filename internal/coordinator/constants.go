package coordinator

import "time"

// ============================================================================
// Defaults
// ============================================================================

const (
	// DefaultLockTimeout bounds the wait for another operation on the same account
	DefaultLockTimeout = 5 * time.Second

	// DefaultHistoryLimit is used when a history request does not set a limit
	DefaultHistoryLimit = 50

	// MaxHistoryLimit caps a single history page
	MaxHistoryLimit = 500
)

// ============================================================================
// Error Contexts
// ============================================================================

const (
	ErrContextAcquireLock    = "failed to acquire account lock"
	ErrContextBeginTx        = "failed to begin transaction"
	ErrContextLockAccount    = "failed to lock account row"
	ErrContextLoadOperation  = "failed to load operation record"
	ErrContextSaveOperation  = "failed to save operation record"
	ErrContextCommit         = "failed to commit transaction"
	ErrContextEncodeOutcome  = "failed to encode outcome"
	ErrContextDecodeOutcome  = "failed to decode stored outcome"
	ErrContextDebit          = "failed to debit balance"
	ErrContextCredit         = "failed to credit balance"
	ErrContextDraw           = "failed to draw item"
	ErrContextTakeItems      = "failed to take items"
	ErrContextGrantItems     = "failed to grant items"
	ErrContextCreateAccount  = "failed to create account"
	ErrContextGetAccount     = "failed to get account"
	ErrContextListInventory  = "failed to list inventory"
	ErrContextListOperations = "failed to list operations"
	ErrContextUpgrade        = "failed to run upgrade"
	ErrContextFuse           = "failed to fuse contract"
	ErrContextLoadSourceItem = "failed to load source item"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgOperationCommitted = "Operation committed"
	LogMsgOperationReplayed  = "Operation replayed from stored outcome"
	LogMsgOperationAborted   = "Operation aborted"
	LogMsgCachePutFailed     = "Failed to cache operation outcome"
	LogMsgCacheGetFailed     = "Failed to read operation cache"
	LogMsgEventPublishFailed = "Failed to publish event"
	LogMsgAccountOpened      = "Account opened"
	LogMsgShutdownWaiting    = "Waiting for in-flight operations"
	LogMsgShutdownComplete   = "Coordinator shut down"
)
