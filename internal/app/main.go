package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bengobox/test-scenarios/internal/config"
	"github.com/bengobox/test-scenarios/internal/logger"
	"github.com/bengobox/test-scenarios/internal/scenario"
	"github.com/joho/godotenv"
)

// Main runs a scenario as a process: load config, bind, serve until SIGINT
// or SIGTERM, then shut down gracefully. Startup failures exit with status 1.
func Main(sc scenario.Scenario) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}

	cfg, err := config.Load(sc.Defaults())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.App.Environment, cfg.App.LogLevel, sc.Name)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck // best effort

	application := New(cfg, zapLogger, sc, nil)
	if err := application.Listen(); err != nil {
		zapLogger.Fatal("failed to bind listener", logger.ZapError(err))
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- application.Serve()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serveErr:
		if err != nil {
			zapLogger.Fatal("server encountered error", logger.ZapError(err))
		}
		return
	case <-ctx.Done():
	}
	zapLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("graceful shutdown failed", logger.ZapError(err))
	}
	if err := <-serveErr; err != nil {
		zapLogger.Error("server encountered error", logger.ZapError(err))
	}
}
