package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/config"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/logger"
)

// SetupLogger installs the process logger writing to stdout and a timestamped
// session file under cfg.LogDir. The caller must close the returned file.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateLogDirFailed, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenLogFileFailed, err)
	}

	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), io.MultiWriter(os.Stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat, "file", logFileName)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigLoaded,
		"storage_driver", cfg.StorageDriver,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"idempotency_backend", cfg.IdempotencyBackend,
		"catalog_path", cfg.CatalogPath,
		"purge_schedule", cfg.PurgeSchedule,
		"port", cfg.Port)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that at most keep remain
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	// Timestamped names sort chronologically
	sort.Strings(logFiles)

	for i := 0; i < len(logFiles)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i])); err != nil {
			slog.Warn(LogMsgDeleteOldLogFailed, "file", logFiles[i], "error", err)
		}
	}
}
