// ABOUTME: Main entry point for the WikiReader API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wikireader-api/api"
	"wikireader-api/api/handlers"
	"wikireader-api/core/interfaces"
	"wikireader-api/core/pipeline"
	"wikireader-api/core/redirect"
	"wikireader-api/core/services"
	"wikireader-api/core/workers"
	"wikireader-api/infrastructure/cache/memory"
	stdhttp "wikireader-api/infrastructure/http/standard"
	logruslogger "wikireader-api/infrastructure/logger/logrus"
	"wikireader-api/infrastructure/storage/sqlite"
	"wikireader-api/pkg/config"
	"wikireader-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(cfg.LogLevel)
	logger.Info("Starting WikiReader API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"content_host": cfg.Redirect.ContentHost,
	})

	// Create cache for ancillary data (metadata, accent colors)
	cache := memory.NewMemoryCache(
		time.Duration(cfg.Cache.DefaultExpiration)*time.Second,
		time.Duration(cfg.Cache.CleanupInterval)*time.Second,
	)

	// Create HTTP client (single attempt, no retry)
	httpClient := stdhttp.NewStandardHTTPClient(
		time.Duration(cfg.Pipeline.FetchTimeoutSeconds) * time.Second,
	)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create preference storage
	store, err := sqlite.NewBlacklistStore(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open preference storage: %v", err)
	}
	defer store.Close()

	// Create services
	renderService := pipeline.NewService(deps, pipeline.Options{
		Origin: cfg.Pipeline.Origin,
	})
	dispatcher := pipeline.NewDispatcher(renderService, logger)
	redirector := redirect.NewService(store, logger, redirect.Options{
		ContentHost: cfg.Redirect.ContentHost,
		ReaderBase:  cfg.Redirect.ReaderBase,
	})
	metadataService := services.NewMetadataService(deps)
	colorService := services.NewAccentColorService(deps)

	// Feature flags, overridable via FEATURE_* environment variables
	flags := featureflags.NewEnvManager("")

	// Banner prefetch worker warms metadata caches after renders
	var prefetcher handlers.BannerPrefetcher
	bannerWorker := workers.NewBannerWorker(metadataService, colorService, logger, workers.DefaultWorkerConfig())
	if flags.IsEnabled(context.Background(), featureflags.BannerPrefetch) {
		bannerWorker.Start()
		defer bannerWorker.Stop()
		prefetcher = bannerWorker
	}

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		Flags:      flags,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	renderHandler := handlers.NewRenderHandler(dispatcher, redirector, prefetcher)
	renderHandler.RegisterRoutes(humaAPI)

	redirectHandler := handlers.NewRedirectHandler(redirector)
	redirectHandler.RegisterRoutes(humaAPI)

	metadataHandler := handlers.NewMetadataHandler(metadataService, colorService)
	metadataHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
