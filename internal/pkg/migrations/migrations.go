package migrations

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"orderprocessing/pkg/logger"
)

const (
	migrationsDir = "sql"
	dialect       = "postgres"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

// goose хранит fs и диалект в глобальном состоянии
var gooseMu sync.Mutex

// Up применяет встроенные миграции через database/sql поверх пула pgx.
func Up(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("close migrations db", logger.NewField("error", err))
		}
	}()

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("get migrations version: %w", err)
	}
	log.Info("migrations applied", logger.NewField("version", version))
	return nil
}
