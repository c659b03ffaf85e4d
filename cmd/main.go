// Package main provides the entry point for the YouTube Extraction API.
// @title YouTube Extraction API
// @version 1.0
// @description HTTP API that resolves YouTube video URLs into direct playable URLs plus metadata.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/yandre13/ytextract/docs" // Import for swagger docs
	"github.com/yandre13/ytextract/internal/api/handlers"
	"github.com/yandre13/ytextract/internal/api/router"
	"github.com/yandre13/ytextract/internal/config"
	"github.com/yandre13/ytextract/internal/services/extractor"
	"github.com/yandre13/ytextract/internal/services/video"
	"github.com/yandre13/ytextract/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.InitLogger(cfg.Server.LogLevel)
	logger.Info("Starting YouTube Extraction API")

	// Initialize extraction backend and pipeline service
	ext := extractor.New(&cfg.Extractor)
	videoService := video.NewService(ext)

	// Initialize handlers
	videoHandler := handlers.NewVideoHandler(videoService)
	healthHandler := handlers.NewHealthHandler()

	// Initialize router
	r := router.NewRouter(cfg, videoHandler, healthHandler)

	// Start server
	go func() {
		logger.Infof("Starting server on %s (backend: %s)", cfg.Server.Addr(), cfg.Extractor.Backend)
		if err := r.Start(); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := r.Shutdown(ctx); err != nil {
		logger.Errorf("Failed to shut down server: %v", err)
	}

	logger.Info("Server shutdown complete")
}
