// Package database opens the PostgreSQL pool and applies schema migrations.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig sizes a connection pool. Zero values take the package defaults.
type PoolConfig struct {
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
}

func (pc PoolConfig) withDefaults() PoolConfig {
	if pc.MaxConns <= 0 {
		pc.MaxConns = DefaultMaxConnections
	}
	if pc.MaxConns > math.MaxInt32 {
		pc.MaxConns = math.MaxInt32
	}
	if pc.MaxConnIdleTime <= 0 {
		pc.MaxConnIdleTime = DefaultMaxConnIdleTime
	}
	if pc.MaxConnLifetime <= 0 {
		pc.MaxConnLifetime = DefaultMaxConnLifetime
	}
	return pc
}

// NewPool connects to connString and pings it, giving up after ConnectTimeout
func NewPool(ctx context.Context, connString string, pc PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	pc = pc.withDefaults()
	config.MaxConns = int32(pc.MaxConns)
	config.MinConns = min(DefaultMinConnections, config.MaxConns)
	config.MaxConnIdleTime = pc.MaxConnIdleTime
	config.MaxConnLifetime = pc.MaxConnLifetime

	ctx, cancel := context.WithTimeout(ctx, ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgConnected,
		"host", config.ConnConfig.Host,
		"database", config.ConnConfig.Database,
		"max_conns", pc.MaxConns)
	return pool, nil
}
