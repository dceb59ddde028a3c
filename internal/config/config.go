// Package config loads service settings from the environment, reading a .env file first when present.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	// Storage
	StorageDriver     string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBSSLMode         string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	AutoMigrate       bool

	// Catalog file; empty uses the built-in catalog
	CatalogPath string

	// Idempotency replay cache
	IdempotencyBackend   string
	IdempotencyCacheSize int
	IdempotencyTTL       time.Duration
	RedisAddr            string
	RedisPassword        string
	RedisDB              int

	// Coordinator
	LockTimeout time.Duration

	// Background work
	HistoryRetention time.Duration
	PurgeSchedule    string
	WorkerPoolSize   int
	WorkerQueueSize  int

	// Events
	EventMaxRetries int
	EventRetryDelay time.Duration
	DeadLetterPath  string

	// HTTP
	TrustedProxies  []string
	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverPostgres)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBSSLMode:         getEnv("DB_SSLMODE", DefaultDBSSLMode),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		AutoMigrate:       getEnvAsBool("AUTO_MIGRATE", true),

		CatalogPath: getEnv("CATALOG_PATH", ""),

		IdempotencyBackend:   strings.ToLower(getEnv("IDEMPOTENCY_BACKEND", IdempotencyBackendMemory)),
		IdempotencyCacheSize: getEnvAsInt("IDEMPOTENCY_CACHE_SIZE", DefaultIdempotencySize),
		IdempotencyTTL:       getEnvAsDuration("IDEMPOTENCY_TTL", DefaultIdempotencyTTL),
		RedisAddr:            getEnv("REDIS_ADDR", DefaultRedisAddr),
		RedisPassword:        getEnv("REDIS_PASSWORD", ""),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),

		LockTimeout: getEnvAsDuration("LOCK_TIMEOUT", DefaultLockTimeout),

		HistoryRetention: getEnvAsDuration("HISTORY_RETENTION", DefaultHistoryRetention),
		PurgeSchedule:    getEnv("PURGE_SCHEDULE", DefaultPurgeSchedule),
		WorkerPoolSize:   getEnvAsInt("WORKER_POOL_SIZE", DefaultWorkerPoolSize),
		WorkerQueueSize:  getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),

		EventMaxRetries: getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay: getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		DeadLetterPath:  getEnv("EVENT_DEADLETTER_PATH", DefaultDeadLetterPath),

		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgInvalidStorageDriver, cfg.StorageDriver)
	}

	switch cfg.IdempotencyBackend {
	case IdempotencyBackendMemory, IdempotencyBackendRedis:
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgInvalidIdempotencyBackend, cfg.IdempotencyBackend)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a time.ParseDuration string, falling back to the default when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL URL with credentials escaped
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {fallback(c.DBSSLMode, DefaultDBSSLMode)}}.Encode(),
	}
	return u.String()
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// UsesPostgres reports whether the durable store is selected
func (c *Config) UsesPostgres() bool {
	return c.StorageDriver == StorageDriverPostgres
}
