package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iho/ledgerexplorer/internal/adapter/archive"
	httpAdapter "github.com/iho/ledgerexplorer/internal/adapter/http"
	"github.com/iho/ledgerexplorer/internal/adapter/http/handler"
	"github.com/iho/ledgerexplorer/internal/adapter/http/middleware"
	"github.com/iho/ledgerexplorer/internal/adapter/idgen"
	"github.com/iho/ledgerexplorer/internal/adapter/indexer"
	postgresRepo "github.com/iho/ledgerexplorer/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/ledgerexplorer/internal/adapter/repository/redis"
	"github.com/iho/ledgerexplorer/internal/infrastructure/config"
	"github.com/iho/ledgerexplorer/internal/infrastructure/logger"
	"github.com/iho/ledgerexplorer/internal/infrastructure/metrics"
	"github.com/iho/ledgerexplorer/internal/infrastructure/network"
	"github.com/iho/ledgerexplorer/internal/infrastructure/postgres"
	"github.com/iho/ledgerexplorer/internal/infrastructure/redis"
	"github.com/iho/ledgerexplorer/internal/usecase"
)

const limiterIdleTimeout = 10 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	registry, err := network.NewRegistry(cfg.Networks...)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid network configuration")
	}

	m := metrics.New()
	indexerClients, err := newIndexerClients(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid indexer configuration")
	}

	var checks []handler.Check

	// Output source
	var (
		source usecase.OutputSource = indexerClients
		pool   *pgxpool.Pool
	)
	if cfg.OutputSource == config.OutputSourcePostgres {
		pool, err = postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
			DatabaseURL:    cfg.DatabaseURL,
			MaxConns:       cfg.DatabaseMaxConns,
			MinConns:       cfg.DatabaseMinConns,
			ConnectTimeout: cfg.DatabaseConnectTimeout,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer pool.Close()
		log.Info().Msg("connected to postgres")

		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}

		source = postgresRepo.NewSyncingSource(postgresRepo.NewLedgerUpdateRepository(pool), indexerClients, appLogger)
		checks = append(checks, handler.PostgresCheck(pool))
	}

	// Output detail resolver, optionally cached
	var (
		resolver    usecase.OutputDetailResolver = indexerClients
		redisClient *goredis.Client
	)
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")

		resolver = redisRepo.NewCachingResolver(indexerClients, redisRepo.NewCache(redisClient), cfg.DetailCacheTTL, appLogger).
			WithObserver(m)
		checks = append(checks, handler.RedisCheck(redisClient))
	}

	// Initialize use cases
	historyUC := usecase.NewHistoryUseCase(
		source,
		resolver,
		registry,
		archive.NewZipWriter(),
		idgen.NewULIDGenerator(),
		appLogger,
		usecase.WithConcurrency(cfg.ResolveConcurrency),
		usecase.WithDecimalPlaces(cfg.DefaultDecimalPlaces),
		usecase.WithObserver(m),
	)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		HistoryHandler: handler.NewHistoryHandler(historyUC, registry),
		HealthHandler:  handler.NewHealthHandler(checks...),
		Logger:         appLogger,
		RateLimiter:    rateLimiter,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	go runLimiterCleanup(cleanupCtx, rateLimiter, limiterIdleTimeout)

	// Start server in goroutine
	go func() {
		log.Info().
			Str("port", cfg.HTTPPort).
			Str("output_source", cfg.OutputSource).
			Strs("networks", cfg.Networks).
			Bool("detail_cache", redisClient != nil).
			Msg("starting server")
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server stopped")
}

// runLimiterCleanup evicts idle per-IP limiters until ctx is done.
func runLimiterCleanup(ctx context.Context, rl *middleware.RateLimiter, idle time.Duration) {
	ticker := time.NewTicker(idle)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := rl.CleanupLimiters(idle); removed > 0 {
				log.Debug().Int("removed", removed).Msg("evicted idle rate limiters")
			}
		}
	}
}

// newIndexerClients creates one indexer client per configured network.
func newIndexerClients(cfg *config.Config) (*indexer.Networks, error) {
	clients := make(map[string]*indexer.Client, len(cfg.Networks))
	for _, name := range cfg.Networks {
		endpoint, err := cfg.IndexerEndpoint(name)
		if err != nil {
			return nil, err
		}
		clients[name] = indexer.NewClient(endpoint.ChronicleURL, endpoint.NodeURL, indexer.WithTimeout(cfg.IndexerTimeout))
	}
	return indexer.NewNetworks(clients), nil
}
