package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Readiness
// =============================================================================

// Names reported by /readyz
const (
	ReadinessCheckStore       = "store"
	ReadinessCheckIdempotency = "idempotency_cache"
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new session starts
	LogFileRetentionCount = 9
)

// =============================================================================
// Timeouts
// =============================================================================

const (
	// StartupTimeout bounds catalog loading, migrations and store pings at boot
	StartupTimeout = 30 * time.Second
)

// =============================================================================
// Error Messages
// =============================================================================

const (
	ErrMsgCreateLogDirFailed         = "failed to create logs directory"
	ErrMsgOpenLogFileFailed          = "failed to open log file"
	ErrMsgCreatePublisherFailed      = "failed to create resilient publisher"
	ErrMsgRegisterMetricsFailed      = "failed to register metrics collector"
	ErrMsgConnectDatabaseFailed      = "failed to connect to database"
	ErrMsgMigrateFailed              = "failed to apply migrations"
	ErrMsgConnectRedisFailed         = "failed to connect to redis"
	ErrMsgLoadCatalogFailed          = "failed to load catalog"
	ErrMsgSchedulePurgeFailed        = "failed to schedule history purge"
	ErrMsgUnsupportedStorageDriver   = "unsupported storage driver"
	ErrMsgUnsupportedIdempotencyKind = "unsupported idempotency backend"
)

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgLoggingInitialized         = "Logging initialized"
	LogMsgStarting                   = "Starting case service"
	LogMsgConfigLoaded               = "Configuration loaded"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgDeadLetterBacklog          = "Dead-letter file holds undelivered events"
	LogMsgDeadLetterUnreadable       = "Dead-letter file could not be read"
	LogMsgStorageReady               = "Storage ready"
	LogMsgPoolStatsNotRegistered     = "Pool statistics not registered"
	LogMsgIdempotencyReady           = "Idempotency cache ready"
	LogMsgPurgeScheduled             = "History purge scheduled"
	LogMsgShuttingDown               = "Shutting down"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgComponentShutdownFailed    = "Component shutdown failed"
	LogMsgShutdownComplete           = "Shutdown complete"
	LogMsgDeleteOldLogFailed         = "Failed to delete old log file"
)

// Component names used in shutdown logs
const (
	ComponentCoordinator = "coordinator"
	ComponentPublisher   = "event_publisher"
	ComponentIdempotency = "idempotency"
)
