package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transcripter-backend/internal/config"
	"transcripter-backend/internal/handlers"
	"transcripter-backend/internal/logging"
	"transcripter-backend/internal/router"
	"transcripter-backend/internal/services"
)

func main() {
	// ──── Step 1: Load Configuration ────
	cfg := config.Load()
	logger := logging.NewLogger(cfg.LogLevel)
	logger.Info("starting transcripter backend", "env", cfg.Env)

	// ──── Step 2: Initialize Services ────
	youtubeService := services.NewYouTubeService(cfg.TranscriptLanguages)
	transcriptService := services.NewTranscriptService(youtubeService, logger)
	connectivity := services.NewConnectivityChecker(cfg.ConnectivityURL, cfg.ConnectivityTimeout)
	logger.Info("services initialized", "languages", cfg.TranscriptLanguages)

	// ──── Step 3: Initialize Handlers ────
	transcriptHandler := handlers.NewTranscriptHandler(transcriptService, logger)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(transcriptService, connectivity, logger)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(transcriptHandler, diagnosticsHandler, cfg.FrontendURL, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("server ready", "addr", server.Addr, "cors_origin", cfg.FrontendURL)

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
