// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fifi-bags/storefront-backend/internal/config"
	"github.com/fifi-bags/storefront-backend/internal/domain/assistant"
	"github.com/fifi-bags/storefront-backend/internal/infrastructure/persistence"
	redisdb "github.com/fifi-bags/storefront-backend/internal/infrastructure/persistence/redis"
	httpserver "github.com/fifi-bags/storefront-backend/internal/interfaces/http"
	"github.com/fifi-bags/storefront-backend/internal/pkg/ai"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	// Configure logging
	setupLogging(cfg)

	logrus.WithFields(logrus.Fields{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting application")

	// Connect storage. Without Redis the shop still runs; snapshots just
	// live in process memory for the lifetime of the server.
	var store persistence.Store
	var health func() error

	redisClient, err := redisdb.NewConnection(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Redis unavailable, falling back to in-memory snapshots")
		store = persistence.NewMemoryStore()
	} else {
		defer redisClient.Close()
		store = redisClient
		health = redisClient.Health
	}

	// Connect the chat service
	var chatter assistant.Chatter = ai.Disabled{}
	if cfg.Assistant.APIKey != "" {
		client, err := ai.NewClient(context.Background(), cfg)
		if err != nil {
			logrus.WithError(err).Warn("Chat service unavailable, assistant will answer with its fallback")
		} else {
			chatter = client
		}
	} else {
		logrus.Warn("GEMINI_API_KEY not set, assistant will answer with its fallback")
	}

	// Build and start the HTTP server
	server := httpserver.NewServer(cfg, store, health, chatter)

	go func() {
		if err := server.Start(); err != nil {
			logrus.WithError(err).Fatal("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("Server forced to shutdown")
	}

	logrus.Info("Server exited gracefully")
}

func setupLogging(cfg *config.Config) {
	if cfg.Logging.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
