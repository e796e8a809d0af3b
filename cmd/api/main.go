package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glucoguide/internal/catalog"
	"glucoguide/internal/config"
	"glucoguide/internal/database"
	"glucoguide/internal/handler"
	"glucoguide/internal/markup"
	"glucoguide/internal/metrics"
	"glucoguide/internal/middleware"
	"glucoguide/internal/repository"
	"glucoguide/internal/router"
	"glucoguide/internal/service"
	"glucoguide/internal/store"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().
		Str("catalog_source", cfg.Catalog.Source).
		Msg("starting glucoguide API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	// Last-known-good catalog store
	st, closeStore, err := newStore(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error().Err(err).Msg("failed to close store")
		}
	}()

	// Catalog loader for the configured source
	loader, locations, cleanup, err := newLoader(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	provider := catalog.NewProvider(&catalog.ProviderConfig{Locations: locations}, loader, st, collector, logger)
	if err := provider.Refresh(ctx); err != nil {
		logger.Warn().
			Err(err).
			Str("origin", string(provider.Status().Origin)).
			Msg("initial catalog load failed, serving fallback catalog")
	}
	go catalog.RunRefresher(ctx, provider, cfg.Catalog.RefreshInterval, logger)

	// Initialize services
	foodService := service.NewFoodService(provider, collector, logger)
	contentService := service.NewContentService(provider, markup.NewRenderer(), collector, logger)

	// Initialize HTTP handlers
	foodHandler := handler.NewFoodHandler(foodService, logger)
	educationHandler := handler.NewEducationHandler(contentService, logger)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  rate.Limit(cfg.RateLimit.RequestsPerSecond),
			Burst: cfg.RateLimit.Burst,
		}, logger)
		defer limiter.Stop()
	}

	// Initialize router
	mux := router.New(router.Config{
		FoodHandler:      foodHandler,
		EducationHandler: educationHandler,
		Provider:         provider,
		Gatherer:         registry,
		RateLimiter:      limiter,
		Recorder:         collector,
		APIKey:           cfg.Auth.APIKey,
	}, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Stop the refresher before draining requests
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newStore returns the Redis store when enabled, otherwise an in-memory one.
// A Redis outage at startup degrades to memory rather than failing.
func newStore(ctx context.Context, cfg config.RedisConfig, logger zerolog.Logger) (store.Store, func() error, error) {
	noop := func() error { return nil }
	if !cfg.Enabled {
		return store.NewMemoryStore(), noop, nil
	}

	st, closeFn, err := store.NewRedisStore(ctx, store.RedisConfig{
		Addr:      cfg.Addr,
		Password:  cfg.Password,
		DB:        cfg.DB,
		KeyPrefix: "glucoguide:",
	}, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("addr", cfg.Addr).
			Msg("failed to connect to redis, using in-memory store")
		return store.NewMemoryStore(), noop, nil
	}
	return st, closeFn, nil
}

// newLoader builds the catalog loader for cfg.Catalog.Source and the
// locations the provider should load. cleanup releases whatever the loader
// holds open.
func newLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (catalog.Loader, []string, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Source {
	case config.SourceFile:
		return catalog.NewFileLoader(logger), cfg.Catalog.Paths, noop, nil

	case config.SourceS3:
		fileLoader := catalog.NewFileLoader(logger)
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Loader = nil
		}
		loader := catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, s3Loader != nil, logger)
		return loader, cfg.Catalog.Paths, noop, nil

	case config.SourceHTTP:
		return catalog.NewHTTPLoader(nil, cfg.Catalog.URL, logger), []string{cfg.Catalog.URL}, noop, nil

	case config.SourcePostgres:
		if cfg.Database.Migrate {
			if err := database.RunMigrations(cfg.Database.MigrationURL(), logger); err != nil {
				return nil, nil, noop, fmt.Errorf("failed to migrate database: %w", err)
			}
		}

		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repository.NewCatalogRepository(pool, logger), []string{"postgres"}, pool.Close, nil

	default:
		logger.Info().Msg("using built-in catalog")
		return catalog.NewStaticLoader(logger), []string{config.SourceStatic}, noop, nil
	}
}
