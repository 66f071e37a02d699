package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/medscribe/internal/config"
	"github.com/nguyentantai21042004/medscribe/internal/extract"
	"github.com/nguyentantai21042004/medscribe/internal/logger"
	"github.com/nguyentantai21042004/medscribe/internal/media"
	"github.com/nguyentantai21042004/medscribe/internal/server"
	"github.com/nguyentantai21042004/medscribe/internal/summarizer"
	"github.com/nguyentantai21042004/medscribe/internal/transcribe"
	"github.com/nguyentantai21042004/medscribe/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Medscribe Backend")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Gemini API key: %s", presence(cfg.Gemini.APIKey))
	log.Info(ctx, "AWS credentials: %s", presence(cfg.AWS.AccessKeyID))
	log.Info(ctx, "AWS region: %s", cfg.AWS.Region)
	log.Info(ctx, "Configuration loaded successfully")

	// Initialize dependencies
	exec := executor.New()

	store, err := media.New(cfg.Paths.Media, exec, log)
	if err != nil {
		log.Error(ctx, "Failed to create media store: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	awsClient, err := transcribe.NewStreamingClient(ctx, cfg.AWS)
	if err != nil {
		log.Error(ctx, "Failed to initialize AWS Transcribe client: %v", err)
		os.Exit(1)
	}
	if awsClient != nil {
		log.Info(ctx, "AWS Transcribe client ready")
	} else {
		log.Warn(ctx, "AWS credentials missing; transcription sessions cannot start")
	}

	recognizer := transcribe.NewSimulatedRecognizer(time.Now().UnixNano())
	sessions := transcribe.New(recognizer, awsClient != nil, log)

	srv := server.New(cfg, log, extract.New(), summarizer.New(cfg.Gemini, log), store, sessions)

	// Create context with cancellation for the media watcher
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := store.Watch(ctx); err != nil && err != context.Canceled {
			log.Error(ctx, "Media watcher error: %v", err)
		}
	}()

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Router(),
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Medscribe is ready!")
	log.Info(ctx, "Listening on :%d", cfg.Server.Port)
	log.Info(ctx, "Media directory: %s", cfg.Paths.Media)
	log.Info(ctx, "Max upload size: %d MB", cfg.Server.MaxUploadMB)
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}
	cancel()

	log.Info(ctx, "Medscribe stopped")
}

func presence(v string) string {
	if v != "" {
		return "SET"
	}
	return "NOT SET"
}
