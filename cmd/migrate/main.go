package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/migrations"
	"dispatch/internal/pkg/postgres"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

const usage = "usage: migrate [up|down|version]"

func main() {
	flag.Parse()
	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var log logger.Logger = zapLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, log, command); err != nil {
		log.Error("migration failed",
			logger.NewField("command", command),
			logger.NewField("error", err),
		)
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, command string) error {
	cfg, err := config.LoadStorage()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Storage.Driver != config.StorageDriverPostgres {
		return fmt.Errorf("migrations need STORAGE_DRIVER=%s, got %q", config.StorageDriverPostgres, cfg.Storage.Driver)
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	switch command {
	case "up":
		return migrations.Up(ctx, log, db)
	case "down":
		return migrations.Down(ctx, log, db)
	case "version":
		version, err := migrations.Version(ctx, db)
		if err != nil {
			return err
		}
		log.Info("schema version", logger.NewField("version", version))
		return nil
	default:
		return fmt.Errorf("unknown command %q: %s", command, usage)
	}
}
