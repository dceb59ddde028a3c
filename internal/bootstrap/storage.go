package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/config"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/database"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/database/memory"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/database/postgres"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/handler"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/idempotency"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/repository"
)

// Storage is the selected durable store plus its readiness probe
type Storage struct {
	Store  repository.Store
	Pinger handler.Pinger
	close  func()
}

// Close releases the underlying connection pool, if any
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// InitializeStorage opens the store selected by cfg.StorageDriver. The
// postgres driver connects, optionally applies migrations, and pings.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		slog.Info(LogMsgStorageReady, "driver", cfg.StorageDriver)
		return &Storage{Store: store, Pinger: store}, nil

	case config.StorageDriverPostgres, "":
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
			MaxConns:        cfg.DBMaxConns,
			MaxConnIdleTime: cfg.DBMaxConnIdleTime,
			MaxConnLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgConnectDatabaseFailed, err)
		}
		if cfg.AutoMigrate {
			if err := database.Migrate(ctx, pool, database.MigrateUp); err != nil {
				pool.Close()
				return nil, fmt.Errorf("%s: %w", ErrMsgMigrateFailed, err)
			}
		}
		stats := database.NewStatsCollector(pool)
		if err := prometheus.Register(stats); err != nil {
			slog.Warn(LogMsgPoolStatsNotRegistered, "error", err)
		}
		closeAll := func() {
			prometheus.Unregister(stats)
			pool.Close()
		}

		store := postgres.NewStore(pool)
		slog.Info(LogMsgStorageReady, "driver", config.StorageDriverPostgres, "auto_migrate", cfg.AutoMigrate)
		return &Storage{Store: store, Pinger: store, close: closeAll}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedStorageDriver, cfg.StorageDriver)
	}
}

// IdempotencyCache is the replay fast path in front of the operations table
type IdempotencyCache struct {
	Store  idempotency.Store
	Pinger handler.Pinger
	close  func() error
}

// Close releases the redis client, if any
func (c *IdempotencyCache) Close() error {
	if c.close != nil {
		return c.close()
	}
	return nil
}

// InitializeIdempotency builds the replay cache selected by cfg.IdempotencyBackend
func InitializeIdempotency(ctx context.Context, cfg *config.Config) (*IdempotencyCache, error) {
	switch cfg.IdempotencyBackend {
	case config.IdempotencyBackendMemory, "":
		slog.Info(LogMsgIdempotencyReady, "backend", config.IdempotencyBackendMemory,
			"size", cfg.IdempotencyCacheSize, "ttl", cfg.IdempotencyTTL)
		return &IdempotencyCache{Store: idempotency.NewLRUStore(cfg.IdempotencyCacheSize, cfg.IdempotencyTTL)}, nil

	case config.IdempotencyBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store := idempotency.NewRedisStore(client, cfg.IdempotencyTTL)
		if err := store.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgConnectRedisFailed, err)
		}
		slog.Info(LogMsgIdempotencyReady, "backend", config.IdempotencyBackendRedis,
			"addr", cfg.RedisAddr, "ttl", cfg.IdempotencyTTL)
		return &IdempotencyCache{Store: store, Pinger: store, close: client.Close}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedIdempotencyKind, cfg.IdempotencyBackend)
	}
}
