// Package bootstrap assembles the service from configuration: logging, storage,
// the replay cache, the catalog, the coordinator, background jobs and the HTTP server.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/catalog"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/config"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/coordinator"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/event"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/handler"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/scheduler"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/server"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/worker"
)

// App is a fully wired service ready to run
type App struct {
	cfg         *config.Config
	Server      *server.Server
	Coordinator coordinator.Service
	Scheduler   *scheduler.Scheduler
	WorkerPool  *worker.Pool
	Publisher   *event.ResilientPublisher
	Storage     *Storage
	Cache       *IdempotencyCache
}

// New wires every component. Anything opened before a failure is released.
func New(ctx context.Context, cfg *config.Config) (app *App, err error) {
	startCtx, cancel := context.WithTimeout(ctx, StartupTimeout)
	defer cancel()

	cat, err := catalog.Load(startCtx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadCatalogFailed, err)
	}

	publisher, err := InitializeEventSystem(cfg)
	if err != nil {
		return nil, err
	}

	storage, err := InitializeStorage(startCtx, cfg)
	if err != nil {
		_ = publisher.Shutdown(ctx)
		return nil, err
	}
	defer func() {
		if err != nil {
			storage.Close()
			_ = publisher.Shutdown(ctx)
		}
	}()

	cache, err := InitializeIdempotency(startCtx, cfg)
	if err != nil {
		return nil, err
	}

	svc := coordinator.NewService(storage.Store, cat, cache.Store, publisher, coordinator.Config{
		LockTimeout: cfg.LockTimeout,
	})

	pool := worker.NewPool(cfg.WorkerPoolSize, cfg.WorkerQueueSize)
	sched := scheduler.New(pool)
	if _, err := sched.Schedule(cfg.PurgeSchedule, worker.NewPurgeHistoryJob(storage.Store, cfg.HistoryRetention)); err != nil {
		_ = cache.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgSchedulePurgeFailed, err)
	}
	slog.Info(LogMsgPurgeScheduled, "schedule", cfg.PurgeSchedule, "retention", cfg.HistoryRetention)

	checks := []handler.ReadinessCheck{
		{Name: ReadinessCheckStore, Pinger: storage.Pinger},
		{Name: ReadinessCheckIdempotency, Pinger: cache.Pinger},
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, handler.NewHandlers(svc, cat), checks...)

	return &App{
		cfg:         cfg,
		Server:      srv,
		Coordinator: svc,
		Scheduler:   sched,
		WorkerPool:  pool,
		Publisher:   publisher,
		Storage:     storage,
		Cache:       cache,
	}, nil
}

// Run starts background work and serves HTTP until ctx is cancelled or the
// listener fails, then shuts everything down within cfg.ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	a.WorkerPool.Start()
	a.Scheduler.Start()

	serveErr := make(chan error, 1)
	go func() {
		if err := a.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err, ok := <-serveErr:
		if ok {
			runErr = err
		}
	}

	timeout := a.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = config.DefaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	GracefulShutdown(shutdownCtx, ShutdownComponents{
		Server:      a.Server,
		Scheduler:   a.Scheduler,
		WorkerPool:  a.WorkerPool,
		Coordinator: a.Coordinator,
		Publisher:   a.Publisher,
		Storage:     a.Storage,
		Cache:       a.Cache,
	})

	return runErr
}
