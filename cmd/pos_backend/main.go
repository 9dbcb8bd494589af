package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/gcash_pos_backend/internal/core/services"
	"github.com/SscSPs/gcash_pos_backend/internal/handlers"
	"github.com/SscSPs/gcash_pos_backend/internal/middleware"
	"github.com/SscSPs/gcash_pos_backend/internal/platform/analytics"
	"github.com/SscSPs/gcash_pos_backend/internal/platform/config"
	"github.com/SscSPs/gcash_pos_backend/internal/platform/logger"
	"github.com/SscSPs/gcash_pos_backend/internal/platform/scheduler"
	"github.com/SscSPs/gcash_pos_backend/internal/repositories/cache"
	"github.com/SscSPs/gcash_pos_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/gcash_pos_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 15 * time.Second

// @title GCash POS Backend API
// @version 1.0
// @description Point-of-sale backend for a GCash cash-in/cash-out and printing shop.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := logger.Initialize(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		log.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	log.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, log); err != nil {
		log.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rdb := database.NewRedisClient(ctx, database.RedisOptions{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer database.CloseRedis(rdb)

	var sessionStore portsrepo.SessionStore
	if rdb != nil {
		sessionStore = cache.NewRedisSessionStore(rdb, cfg.SessionTTL)
		log.Info("Using Redis session store")
	} else {
		sessionStore = cache.NewMemorySessionStore(cfg.SessionTTL)
		log.Warn("Using in-memory session store; open carts will not survive a restart")
	}

	repos := pgsql.NewRepositoryProvider(dbPool, sessionStore)
	svc := services.NewServiceContainer(cfg, repos)

	if cfg.BootstrapAdminUsername != "" && cfg.BootstrapAdminPassword != "" {
		created, err := svc.Auth.EnsureOperator(ctx, cfg.BootstrapAdminUsername, cfg.BootstrapAdminPassword, domain.RoleAdmin)
		if err != nil {
			log.Error("Failed to provision bootstrap admin", slog.String("error", err.Error()))
			os.Exit(1)
		}
		log.Info("Bootstrap admin checked", slog.String("username", cfg.BootstrapAdminUsername), slog.Bool("created", created))
	}

	if cfg.PriceSeedFile != "" {
		seeded, err := svc.Catalog.SeedFromFile(ctx, cfg.PriceSeedFile)
		if err != nil {
			log.Error("Failed to seed price catalog", slog.String("file", cfg.PriceSeedFile), slog.String("error", err.Error()))
			os.Exit(1)
		}
		log.Info("Price catalog seed checked", slog.String("file", cfg.PriceSeedFile), slog.Int("seeded", seeded))
	}

	sched, err := scheduler.NewScheduler(cfg.SnapshotCron, cfg.BusinessLocation, svc.Reporting, log)
	if err != nil {
		log.Error("Failed to create scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(log), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	tracker, err := analytics.NewPostHog(cfg.PosthogAPIKey, cfg.PosthogEndpoint, log)
	if err != nil {
		log.Error("Failed to initialise analytics", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if tracker != nil {
		log.Info("Product analytics enabled", slog.String("endpoint", cfg.PosthogEndpoint))
		defer tracker.Close()
		r.Use(middleware.Analytics(tracker))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, svc); err != nil {
		log.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// runMigrations applies every pending migration under ./migrations.
func runMigrations(databaseURL string, log *slog.Logger) error {
	log.Info("Running database migrations...")
	// migrate needs a database/sql handle; the pgx stdlib driver keeps it on the same driver as the pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			log.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		log.Info("No new migrations to apply.")
	} else {
		log.Info("Database migrations applied successfully.")
	}
	return nil
}
