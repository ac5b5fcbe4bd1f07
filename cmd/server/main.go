package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Joseph25Rejo/quarks-inngest/internal/bootstrap"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/config"
	"github.com/Joseph25Rejo/quarks-inngest/pkg/logger"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	deps, err := (&bootstrap.Bootstrap{}).Init(ctx, bootstrap.BootstrapConfig{
		Config: cfg,
		Logger: appLogger,
	})
	if err != nil {
		appLogger.Error(err)
		os.Exit(1)
	}

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: deps.Handler,
	}

	go func() {
		appLogger.Info("gateway listening",
			logger.Field{Key: "app", Value: cfg.App.Name},
			logger.Field{Key: "environment", Value: cfg.App.Environment},
			logger.Field{Key: "address", Value: addr})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error(err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down gateway...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(err)
	}
	if err := deps.Close(shutdownCtx); err != nil {
		appLogger.Error(err)
	}

	appLogger.Info("gateway stopped")
}
