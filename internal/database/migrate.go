package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pr-poehali-dev/cs2-case-openings/migrations"
)

// MigrationDirection selects what Migrate does
type MigrationDirection string

const (
	MigrateUp     MigrationDirection = "up"
	MigrateDown   MigrationDirection = "down"
	MigrateStatus MigrationDirection = "status"
)

// Migrate runs the embedded goose migrations against pool
func Migrate(ctx context.Context, pool *pgxpool.Pool, direction MigrationDirection) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(MigrationDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}

	var err error
	switch direction {
	case MigrateUp:
		err = goose.UpContext(ctx, db, ".")
	case MigrateDown:
		err = goose.DownContext(ctx, db, ".")
	case MigrateStatus:
		err = goose.StatusContext(ctx, db, ".")
	default:
		return fmt.Errorf("%s: unknown direction %q", ErrMsgMigrationFailed, direction)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}

	slog.Default().Info(LogMsgMigrationsApplied, "direction", direction)
	return nil
}
