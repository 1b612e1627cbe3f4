package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"saasusync/internal/config"
	"saasusync/internal/database"
	"saasusync/internal/logger"
	"saasusync/internal/services/saasu"
	"saasusync/internal/sync"
	"saasusync/internal/synclog"
	"saasusync/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	if !cfg.SaasuValid() {
		logger.Warn("Saasu configuration incomplete, order events will be consumed but not synced")
	}

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}

	// Initialize the invoice flow
	client := saasu.NewClient(cfg.SaasuAPIURL, cfg.SaasuKey, cfg.SaasuFileID, logger)
	store := synclog.NewStore(db.DB, logger)
	invoicePoster := sync.NewInvoicePoster(cfg, logger, client, store)

	// Initialize worker
	w := worker.New(cfg, logger, invoicePoster)

	// Start worker
	logger.Info("Starting worker...")
	go w.Start()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down worker...")
	w.Stop()
	db.Close()
}
