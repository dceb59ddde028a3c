package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureSlog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestInitializeEventSystem_CreatesDeadLetterDir(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.DeadLetterPath = filepath.Join(t.TempDir(), "nested", "events", "deadletter.jsonl")

	publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Shutdown(context.Background()) })

	_, err = os.Stat(filepath.Dir(cfg.DeadLetterPath))
	assert.NoError(t, err)
}

func TestInitializeEventSystem_ReportsBacklog(t *testing.T) {
	logs := captureSlog(t)
	cfg := memoryConfig(t)

	backlog := `{"schema_version":"1.1","account_id":"alice","attempts":3,"last_error":"boom"}` + "\n" +
		`{"schema_version":"1.1","account_id":"bob","attempts":3}` + "\n" +
		`{"torn`
	require.NoError(t, os.WriteFile(cfg.DeadLetterPath, []byte(backlog), 0o644))

	publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Shutdown(context.Background()) })

	out := logs.String()
	assert.Contains(t, out, LogMsgDeadLetterBacklog)
	assert.Contains(t, out, "events=2")
	assert.Contains(t, out, "torn_lines=1")
}

func TestInitializeEventSystem_NoBacklogIsQuiet(t *testing.T) {
	logs := captureSlog(t)

	publisher, err := InitializeEventSystem(memoryConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Shutdown(context.Background()) })

	assert.NotContains(t, logs.String(), LogMsgDeadLetterBacklog)
	assert.Contains(t, logs.String(), LogMsgEventSystemInitialized)
}

func TestPositiveOr(t *testing.T) {
	assert.Equal(t, 3, positiveOr(0, 3))
	assert.Equal(t, 5, positiveOr(5, 3))
	assert.Equal(t, 3, positiveOr(-1, 3))
}
