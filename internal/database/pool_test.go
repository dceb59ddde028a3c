package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/testing/leaktest"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	terminate := func() {}
	if !testing.Short() {
		testDBConnString, terminate = startPostgres(context.Background())
	}

	code := m.Run()
	terminate()
	os.Exit(code)
}

// startPostgres returns an empty connection string when Docker is unavailable
func startPostgres(ctx context.Context) (connStr string, terminate func()) {
	terminate = func() {}
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("WARNING: testcontainers panicked: %v\n", r)
		}
	}()

	c, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("cases_test"),
		postgres.WithUsername("cases"),
		postgres.WithPassword("cases"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: postgres container unavailable: %v\n", err)
		return "", terminate
	}

	if connStr, err = c.ConnectionString(ctx, "sslmode=disable"); err != nil {
		_ = c.Terminate(ctx)
		return "", terminate
	}
	return connStr, func() { _ = c.Terminate(ctx) }
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestPoolConfig_Defaults(t *testing.T) {
	got := PoolConfig{}.withDefaults()
	assert.Equal(t, DefaultMaxConnections, got.MaxConns)
	assert.Equal(t, DefaultMaxConnIdleTime, got.MaxConnIdleTime)
	assert.Equal(t, DefaultMaxConnLifetime, got.MaxConnLifetime)

	got = PoolConfig{MaxConns: 3, MaxConnIdleTime: time.Second, MaxConnLifetime: time.Minute}.withDefaults()
	assert.Equal(t, PoolConfig{MaxConns: 3, MaxConnIdleTime: time.Second, MaxConnLifetime: time.Minute}, got)
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://%zz", PoolConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestNewPool_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	// Port 1 refuses connections on any sane host
	_, err := NewPool(ctx, "postgres://u:p@127.0.0.1:1/db?sslmode=disable&connect_timeout=1", PoolConfig{MaxConns: 1})
	require.Error(t, err)
}

func TestNewPool_AppliesSizing(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(context.Background(), testDBConnString, PoolConfig{MaxConns: 1})
	require.NoError(t, err)
	defer pool.Close()

	cfg := pool.Config()
	assert.Equal(t, int32(1), cfg.MaxConns)
	assert.Equal(t, int32(1), cfg.MinConns, "min connections never exceed the ceiling")
	assert.Equal(t, DefaultMaxConnLifetime, cfg.MaxConnLifetime)
}

func TestNewPool_CeilingEnforced(t *testing.T) {
	requireDB(t)

	const maxConns = 3
	pool, err := NewPool(context.Background(), testDBConnString, PoolConfig{MaxConns: maxConns})
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()
	for i := 0; i < maxConns; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		defer conn.Release()
	}

	short, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err = pool.Acquire(short)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewPool_ConcurrentQueriesReleaseConnections(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(context.Background(), testDBConnString, PoolConfig{MaxConns: 4})
	require.NoError(t, err)

	leaktest.CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				var n int
				if err := pool.QueryRow(context.Background(), "SELECT $1::int", i).Scan(&n); err != nil {
					t.Errorf("query %d: %v", i, err)
				}
			}(i)
		}
		wg.Wait()
	})

	assert.Zero(t, pool.Stat().AcquiredConns())
	pool.Close()
}

func TestStatsCollector(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(context.Background(), testDBConnString, PoolConfig{MaxConns: 5})
	require.NoError(t, err)
	defer pool.Close()

	c := NewStatsCollector(pool)
	assert.Equal(t, 7, testutil.CollectAndCount(c))

	expected := `
# HELP cases_db_pool_max_conns Configured pool ceiling
# TYPE cases_db_pool_max_conns gauge
cases_db_pool_max_conns 5
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "cases_db_pool_max_conns"))
}

func TestMigrate_UnknownDirection(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(context.Background(), testDBConnString, PoolConfig{MaxConns: 2})
	require.NoError(t, err)
	defer pool.Close()

	err = Migrate(context.Background(), pool, MigrationDirection("sideways"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown direction")
}

func TestMigrate_UpDownUp(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	pool, err := NewPool(ctx, testDBConnString, PoolConfig{MaxConns: 2})
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, Migrate(ctx, pool, MigrateUp))
	require.NoError(t, Migrate(ctx, pool, MigrateStatus))

	var exists bool
	require.NoError(t, pool.QueryRow(ctx, "SELECT to_regclass('public.accounts') IS NOT NULL").Scan(&exists))
	assert.True(t, exists)

	require.NoError(t, Migrate(ctx, pool, MigrateDown))
	require.NoError(t, pool.QueryRow(ctx, "SELECT to_regclass('public.accounts') IS NOT NULL").Scan(&exists))
	assert.False(t, exists)

	require.NoError(t, Migrate(ctx, pool, MigrateUp))
}
