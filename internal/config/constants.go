package config

import "time"

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Idempotency cache backends
const (
	IdempotencyBackendMemory = "memory"
	IdempotencyBackendRedis  = "redis"
)

// Defaults applied when the environment leaves a setting unset
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "cs2-case-openings"
	DefaultVersion           = "dev"
	DefaultDBName            = "cases"
	DefaultDBSSLMode         = "disable"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultIdempotencySize   = 10000
	DefaultIdempotencyTTL    = 24 * time.Hour
	DefaultRedisAddr         = "localhost:6379"
	DefaultHistoryRetention  = 30 * 24 * time.Hour
	DefaultPurgeSchedule     = "0 3 * * *"
	DefaultLockTimeout       = 5 * time.Second
	DefaultShutdownTimeout   = 15 * time.Second
	DefaultEventMaxRetries   = 3
	DefaultEventRetryDelay   = 2 * time.Second
	DefaultDeadLetterPath    = "logs/event_deadletter.jsonl"
	DefaultWorkerPoolSize    = 2
	DefaultWorkerQueueSize   = 16
)

// Error messages
const (
	ErrMsgInvalidPort               = "invalid PORT value"
	ErrMsgAPIKeyRequired            = "API_KEY environment variable must be set for security"
	ErrMsgInvalidStorageDriver      = "invalid STORAGE_DRIVER value"
	ErrMsgInvalidIdempotencyBackend = "invalid IDEMPOTENCY_BACKEND value"
)
