package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dukerupert/wardrobe/internal"
	"github.com/dukerupert/wardrobe/internal/auth"
	"github.com/dukerupert/wardrobe/internal/bootstrap"
	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/handler/api"
	"github.com/dukerupert/wardrobe/internal/middleware"
	"github.com/dukerupert/wardrobe/internal/postgres"
	"github.com/dukerupert/wardrobe/internal/repository"
	"github.com/dukerupert/wardrobe/internal/router"
	"github.com/dukerupert/wardrobe/internal/routes"
	"github.com/dukerupert/wardrobe/internal/storage"
	"github.com/dukerupert/wardrobe/internal/telemetry"
	"github.com/dukerupert/wardrobe/internal/weather"
	"github.com/dukerupert/wardrobe/internal/worker"
)

const shutdownTimeout = 20 * time.Second

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Error tracking
	flushSentry, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:              cfg.Sentry.DSN,
		Enabled:          cfg.Sentry.Enabled,
		Environment:      cfg.Sentry.Environment,
		Release:          cfg.Sentry.Release,
		SampleRate:       cfg.Sentry.SampleRate,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
		Debug:            cfg.Sentry.Debug,
	}, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer flushSentry()

	telemetry.InitBusinessMetrics("wardrobe")

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(ctx, sqlDB, logger); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	// Initialize pgx connection pool for application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	repo := repository.New(postgres.NewDB(pool))
	scope := postgres.NewTxScope(pool)

	// Roles and the master admin
	if err := bootstrap.EnsureMasterAdmin(ctx, repo, scope, &bootstrap.AdminConfig{
		Email:     cfg.Admin.Email,
		Password:  cfg.Admin.Password,
		FirstName: cfg.Admin.FirstName,
		LastName:  cfg.Admin.LastName,
	}, logger); err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	// Image storage
	images, err := storage.NewStorage(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize image storage: %w", err)
	}
	logger.Info("Image storage ready", "provider", cfg.Storage.Provider)

	// Weather upstreams
	thermometer := weather.NewThermometer(
		weather.NewGeocoder(cfg.Weather.GeocodingURL, cfg.Weather.GeocodingKey, cfg.Weather.Timeout),
		weather.NewProvider(cfg.Weather.WeatherURL, cfg.Weather.WeatherKey, cfg.Weather.Timeout),
		logger,
	)

	// Services
	userService := postgres.NewUserService(repo, scope)
	categoryService := postgres.NewCategoryService(repo, scope)
	productService := postgres.NewProductService(repo, scope, images, thermometer, logger)
	imageService := postgres.NewImageService(repo, scope, images, logger)
	shoppingService := postgres.NewShoppingService(repo, scope)

	tokens := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)

	metrics := middleware.NewMetrics("wardrobe")

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		middleware.WithClientIP(),
		telemetry.SentryMiddleware(),
		metrics.Middleware,
		middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig()),
		router.CORS(cfg.CORSOrigins),
		middleware.MaxBodySize(),
		middleware.RateLimit(middleware.DefaultRateLimiterConfig()),
		middleware.WithPrincipal(tokens),
		middleware.WithRequestLogger(logger),
		telemetry.SentryContextMiddleware(principalForSentry),
		router.Logger(logger),
	)

	routes.RegisterUserRoutes(r, routes.UserDeps{
		Handler: api.NewUserHandler(userService, tokens, logger),
	})
	routes.RegisterCatalogRoutes(r, routes.CatalogDeps{
		CategoryHandler: api.NewCategoryHandler(categoryService),
		ProductHandler:  api.NewProductHandler(productService, imageService, logger),
	})
	routes.RegisterShoppingRoutes(r, routes.ShoppingDeps{
		Handler: api.NewShoppingHandler(shoppingService),
	})
	routes.RegisterOpsRoutes(r, routes.OpsDeps{
		HealthHandler:  api.NewHealthHandler(pool),
		MetricsHandler: metrics.Handler(),
	})

	// ==========================================================================
	// Background worker
	// ==========================================================================

	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	w := worker.NewWorker(repo, images, worker.Config{
		SweepInterval: cfg.Sweep.Interval,
	}, logger)
	go func() {
		defer close(workerDone)
		if err := w.Start(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("worker stopped", "error", err)
		}
	}()

	// ==========================================================================
	// Start server
	// ==========================================================================

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		stopWorker()
		<-workerDone
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}

	stopWorker()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		logger.Warn("worker did not stop before the shutdown deadline")
	}

	logger.Info("Shutdown complete", slog.String("env", cfg.Env))
	return nil
}

// principalForSentry tags captured errors with the caller's email.
func principalForSentry(ctx context.Context) *telemetry.UserInfo {
	p := domain.PrincipalFromContext(ctx)
	if p == nil {
		return nil
	}
	return &telemetry.UserInfo{Email: p.Email}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
