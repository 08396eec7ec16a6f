package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentalhub/internal/config"
	"rentalhub/internal/logging"
	"rentalhub/internal/server"
	"rentalhub/internal/version"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := config.New()

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	info := version.Get()
	logger.Info("starting rentalhub", zap.String("version", info.Version), zap.String("commit", info.Commit))

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", zap.Error(err))
		}
		_ = srv.Close()
		if err != nil {
			os.Exit(1)
		}
		return
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
