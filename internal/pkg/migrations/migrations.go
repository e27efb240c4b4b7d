package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"dispatch/pkg/logger"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedded embed.FS

type migrationLogger interface {
	Info(msg string, fields ...logger.Field)
}

// Up применяет все непримененные миграции схемы.
func Up(ctx context.Context, log migrationLogger, db *sql.DB) error {
	provider, err := newProvider(db)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, r := range results {
		log.Info("migration applied",
			logger.NewField("version", r.Source.Version),
			logger.NewField("duration", r.Duration.String()),
		)
	}
	return nil
}

// Down откатывает последнюю миграцию.
func Down(ctx context.Context, log migrationLogger, db *sql.DB) error {
	provider, err := newProvider(db)
	if err != nil {
		return err
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("rollback migration: %w", err)
	}

	log.Info("migration rolled back", logger.NewField("version", result.Source.Version))
	return nil
}

func Version(ctx context.Context, db *sql.DB) (int64, error) {
	provider, err := newProvider(db)
	if err != nil {
		return 0, err
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("get schema version: %w", err)
	}
	return version, nil
}

func newProvider(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(embedded, "sql")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}
	return provider, nil
}
