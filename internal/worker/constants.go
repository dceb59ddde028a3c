package worker

import "time"

// ============================================================================
// Pool Defaults
// ============================================================================

// DefaultWorkers is used when a pool is created with a non-positive worker count
const DefaultWorkers = 1

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 5 * time.Minute

// ============================================================================
// Jobs
// ============================================================================

// JobNamePurgeHistory names the history purge job in logs
const JobNamePurgeHistory = "purge_history"

// DefaultHistoryRetention keeps operation records for thirty days
const DefaultHistoryRetention = 30 * 24 * time.Hour

// ErrContextPurgeHistory wraps store errors from the purge job
const ErrContextPurgeHistory = "failed to purge operation history"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerJobDone   = "Worker job done"
	LogMsgWorkerQueueFull = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - History Purge
// ============================================================================

// Log messages for the history purge job
const (
	LogMsgPurgeHistoryStarting  = "History purge starting"
	LogMsgPurgeHistoryCompleted = "History purge completed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
