package main

//go:generate go run github.com/swaggo/swag/cmd/swag init --dir ../../ --generalInfo cmd/app/main.go --output ../../docs

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/pr-poehali-dev/cs2-case-openings/docs"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/bootstrap"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/config"
)

// @title CS2 Case Openings API
// @version 1.0
// @description Case drops, item upgrades and contract fusions over a transactional ledger.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Printf("Environment check: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		slog.Error("Failed to start", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
