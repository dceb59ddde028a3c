package bootstrap

import (
	"context"
	"log/slog"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/coordinator"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/event"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/scheduler"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/server"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server      *server.Server
	Scheduler   *scheduler.Scheduler
	WorkerPool  *worker.Pool
	Coordinator coordinator.Service
	Publisher   *event.ResilientPublisher
	Storage     *Storage
	Cache       *IdempotencyCache
}

// GracefulShutdown stops components outermost first:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (no new purges)
// 3. Coordinator (wait for in-flight operations to commit)
// 4. Event publisher (flush retries so post-commit events are not lost)
// 5. Replay cache and store connections
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}

	if c.Coordinator != nil {
		shutdownComponent(ctx, ComponentCoordinator, c.Coordinator)
	}
	if c.Publisher != nil {
		shutdownComponent(ctx, ComponentPublisher, c.Publisher)
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			slog.Error(LogMsgComponentShutdownFailed, "component", ComponentIdempotency, "error", err)
		}
	}
	if c.Storage != nil {
		c.Storage.Close()
	}

	slog.Info(LogMsgShutdownComplete)
}

type shutdownable interface {
	Shutdown(context.Context) error
}

func shutdownComponent(ctx context.Context, name string, s shutdownable) {
	if err := s.Shutdown(ctx); err != nil {
		slog.Error(LogMsgComponentShutdownFailed, "component", name, "error", err)
	}
}
