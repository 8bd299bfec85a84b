package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/services"
	"github.com/AbdulmosenAlmuzaini/malek/internal/handlers"
	"github.com/AbdulmosenAlmuzaini/malek/internal/jobs"
	"github.com/AbdulmosenAlmuzaini/malek/internal/middleware"
	"github.com/AbdulmosenAlmuzaini/malek/internal/platform/bootstrap"
	"github.com/AbdulmosenAlmuzaini/malek/internal/platform/config"
	"github.com/AbdulmosenAlmuzaini/malek/internal/platform/mailer"
	"github.com/AbdulmosenAlmuzaini/malek/internal/platform/uploads"
	"github.com/AbdulmosenAlmuzaini/malek/internal/repositories/database/pgsql"
	"github.com/AbdulmosenAlmuzaini/malek/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Bookkeeping Backend API
// @version 1.0
// @description REST API for the bookkeeping and cash ledger backend.

// @host localhost:3001
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. The session cookie works too.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	// Seed the admin user and default lookup entries on a fresh
	// database
	if err := bootstrap.Seed(context.Background(), repos, cfg, logger); err != nil {
		logger.Error("Failed to seed database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	uploadStore, err := uploads.NewStore(cfg.UploadsDir)
	if err != nil {
		logger.Error("Failed to initialize upload store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sender := mailer.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	serviceContainer := services.NewServiceContainer(repos, sender, cfg)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rateLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Period: 15 * time.Minute,
		Limit:  100,
	})
	r.Use(middleware.RateLimit(rateLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Attachments are served straight from disk
	r.Static("/uploads", uploadStore.Dir())

	handlers.RegisterRoutes(r, cfg, serviceContainer, uploadStore)

	// Daily backup runs on its own scheduler goroutine
	backupJob := jobs.NewBackupJob(serviceContainer.Backup, cfg.BackupAt, logger)
	go backupJob.Start()

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending up migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
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

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
