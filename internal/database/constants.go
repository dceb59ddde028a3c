package database

import "time"

// Pool defaults
const (
	DefaultMinConnections  = 2
	DefaultMaxConnections  = 20
	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = 30 * time.Minute

	// ConnectTimeout bounds pool creation plus the first ping
	ConnectTimeout = 10 * time.Second
)

// MigrationDialect is the goose dialect for the embedded migrations
const MigrationDialect = "postgres"

// Prometheus naming for pool statistics
const (
	MetricsNamespace = "cases"
	MetricsSubsystem = "db_pool"
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgMigrationFailed         = "migration failed"
)

// Log messages
const (
	LogMsgConnected         = "Connected to database"
	LogMsgMigrationsApplied = "Database migrations complete"
)
