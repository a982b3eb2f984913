package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iho/ladrillo/internal/adapter/fxprovider"
	httpAdapter "github.com/iho/ladrillo/internal/adapter/http"
	"github.com/iho/ladrillo/internal/adapter/http/handler"
	"github.com/iho/ladrillo/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/ladrillo/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/ladrillo/internal/adapter/repository/redis"
	"github.com/iho/ladrillo/internal/infrastructure/config"
	"github.com/iho/ladrillo/internal/infrastructure/logger"
	"github.com/iho/ladrillo/internal/infrastructure/metrics"
	"github.com/iho/ladrillo/internal/infrastructure/postgres"
	"github.com/iho/ladrillo/internal/infrastructure/redis"
	"github.com/iho/ladrillo/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	zerolog.DefaultContextLogger = &log.Logger

	ctx := context.Background()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories and providers
	transactionRepo := postgresRepo.NewTransactionRepository(pool, m)
	settingsRepo := postgresRepo.NewSettingsRepository(pool, m)
	cache := redisRepo.NewCache(redisClient, m)
	rateProvider := fxprovider.NewDolarAPIProvider(cfg.FxAPIURL, cfg.FxTimeout, cfg.FxFallbackEnabled, m)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	fxRatesUC := usecase.NewFxRatesUseCase(rateProvider, cache, cfg.FxCacheTTL, nil)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, fxRatesUC, idGen, nil).WithRetrier(retrier)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo).WithRetrier(retrier)
	benchmarkUC := usecase.NewBenchmarkUseCase()
	summaryUC := usecase.NewSummaryUseCase(transactionRepo, settingsRepo, nil)

	// Initialize handlers
	transactionHandler := handler.NewTransactionHandler(transactionUC)
	fxRatesHandler := handler.NewFxRatesHandler(fxRatesUC)
	benchmarkHandler := handler.NewBenchmarkHandler(benchmarkUC)
	settingsHandler := handler.NewSettingsHandler(settingsUC)
	summaryHandler := handler.NewSummaryHandler(summaryUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: transactionHandler,
		FxRatesHandler:     fxRatesHandler,
		BenchmarkHandler:   benchmarkHandler,
		SettingsHandler:    settingsHandler,
		SummaryHandler:     summaryHandler,
		HealthHandler:      healthHandler,
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Logging:            middleware.NewLoggingMiddleware(log.Logger),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
