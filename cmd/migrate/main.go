package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"quickparcel/internal/pkg/config"
	"quickparcel/internal/pkg/dotenv"
	"quickparcel/internal/pkg/postgres"
	"quickparcel/pkg/logger"
	"quickparcel/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var log logger.Logger = zapLogger

	if err := dotenv.Load(); err != nil {
		log.Error("failed to load environment", logger.NewField("error", err))
		return
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Error("load config", logger.NewField("error", err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		log.Error("database", logger.NewField("error", err))
		return
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, log, pool); err != nil {
		log.Error("migrate", logger.NewField("error", err))
		return
	}
}
