package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"empty uses default", "", 42},
		{"positive", "100", 100},
		{"negative", "-10", -10},
		{"zero is a value", "0", 0},
		{"garbage uses default", "not-a-number", 42},
		{"float uses default", "42.5", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	const def = 5 * time.Minute
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", def},
		{"10m", 10 * time.Minute},
		{"1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"500ms", 500 * time.Millisecond},
		{"100", def},
		{"soon", def},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", def))
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"FALSE", true, false},
		{"0", true, false},
		{"yes", true, true},
		{"", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsBool("TEST_BOOL_VAR", tt.def))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_LIST_VAR", "")
	assert.Nil(t, getEnvAsList("TEST_LIST_VAR"))

	t.Setenv("TEST_LIST_VAR", " 10.0.0.1 ,10.0.0.2,, ::1 ")
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2", "::1"}, getEnvAsList("TEST_LIST_VAR"))
}

func TestLoad_PoolAndWorkerSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
		assert.Equal(t, DefaultDBMaxConnLifetime, cfg.DBMaxConnLifetime)
		assert.Equal(t, DefaultWorkerPoolSize, cfg.WorkerPoolSize)
		assert.Equal(t, DefaultWorkerQueueSize, cfg.WorkerQueueSize)
		assert.Equal(t, DefaultDBSSLMode, cfg.DBSSLMode)
	})

	t.Run("overrides", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
		t.Setenv("DB_MAX_CONN_LIFETIME", "1h")
		t.Setenv("DB_SSLMODE", "require")
		t.Setenv("WORKER_POOL_SIZE", "8")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.DBMaxConns)
		assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
		assert.Equal(t, 8, cfg.WorkerPoolSize)
		assert.Contains(t, cfg.GetDBConnString(), "sslmode=require")
	})

	t.Run("malformed values fall back", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DB_MAX_CONNS", "lots")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "invalid")
		t.Setenv("LOCK_TIMEOUT", "forever")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
		assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
		assert.Equal(t, DefaultLockTimeout, cfg.LockTimeout)
	})
}
