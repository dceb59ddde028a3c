package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/config"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/event"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/metrics"
)

// InitializeEventSystem creates the in-memory bus, subscribes the business
// metrics collector and wraps the bus in a resilient publisher that retries
// failed deliveries and dead-letters the rest.
func InitializeEventSystem(cfg *config.Config) (*event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRegisterMetricsFailed, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	maxRetries := positiveOr(cfg.EventMaxRetries, config.DefaultEventMaxRetries)
	retryDelay := positiveOr(cfg.EventRetryDelay, config.DefaultEventRetryDelay)
	deadLetterPath := cfg.DeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = config.DefaultDeadLetterPath
	}

	reportDeadLetterBacklog(deadLetterPath)

	publisher, err := event.NewResilientPublisher(bus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreatePublisherFailed, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return publisher, nil
}

// reportDeadLetterBacklog warns when a previous run left undelivered events behind
func reportDeadLetterBacklog(path string) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		slog.Warn(LogMsgDeadLetterUnreadable, "path", path, "error", err)
		return
	}
	defer f.Close()

	entries, skipped, err := event.ReadDeadLetters(f)
	if err != nil {
		slog.Warn(LogMsgDeadLetterUnreadable, "path", path, "error", err)
		return
	}
	if len(entries) > 0 || skipped > 0 {
		slog.Warn(LogMsgDeadLetterBacklog, "path", path, "events", len(entries), "torn_lines", skipped)
	}
}

func positiveOr[T ~int | ~int64](v, fallback T) T {
	if v > 0 {
		return v
	}
	return fallback
}
