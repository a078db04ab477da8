// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	authMiddleware "github.com/steelcity/sports-results/internal/auth/middleware"
	authRouter "github.com/steelcity/sports-results/internal/auth/router"
	authService "github.com/steelcity/sports-results/internal/auth/service"
	"github.com/steelcity/sports-results/internal/config"
	"github.com/steelcity/sports-results/internal/database"
	"github.com/steelcity/sports-results/internal/database/migrate"
	footballModel "github.com/steelcity/sports-results/internal/football/model"
	footballRouter "github.com/steelcity/sports-results/internal/football/router"
	golfModel "github.com/steelcity/sports-results/internal/golf/model"
	golfRouter "github.com/steelcity/sports-results/internal/golf/router"
	"github.com/steelcity/sports-results/internal/health"
	hockeyModel "github.com/steelcity/sports-results/internal/hockey/model"
	hockeyRouter "github.com/steelcity/sports-results/internal/hockey/router"
	"github.com/steelcity/sports-results/internal/middleware"
	raceModel "github.com/steelcity/sports-results/internal/race/model"
	raceRouter "github.com/steelcity/sports-results/internal/race/router"
	"github.com/steelcity/sports-results/pkg/logger"
)

func main() {
	// A missing .env file is fine; the environment itself still applies.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbCfg := database.LoadConfigFromEnv()
	db, err := database.NewWithConfig(ctx, dbCfg)
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}

	if err := runMigrations(db, dbCfg); err != nil {
		appLogger.Fatalw("failed to run migrations", "error", err)
	}

	authSvc := authService.New(cfg.Auth, appLogger)
	guard := authMiddleware.RequireAdmin(authSvc)

	r := gin.New()
	r.Use(middleware.Logger(appLogger))
	r.Use(middleware.Recovery(appLogger))

	r.GET("/", landing)
	r.GET("/health", health.New(db, appLogger).Check)

	authRouter.RegisterRoutes(r, authSvc, appLogger)
	raceRouter.RegisterRoutes(r, db, guard, appLogger)
	golfRouter.RegisterRoutes(r, db, guard, appLogger)
	footballRouter.RegisterRoutes(r, db, guard, appLogger)
	hockeyRouter.RegisterRoutes(r, db, guard, appLogger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Infow("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorw("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// runMigrations applies the SQL migrations on PostgreSQL. The SQLite
// fallback has no migration history, so it builds the schema from the
// models instead.
func runMigrations(db *gorm.DB, dbCfg database.Config) error {
	if dbCfg.IsPostgres() {
		return migrate.Up(db)
	}
	return migrate.AutoMigrate(db,
		&raceModel.Race{},
		&golfModel.TournamentResult{},
		&footballModel.Game{},
		&hockeyModel.Game{},
	)
}

// landing lists the site's sections so the root URL is navigable.
func landing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sections": []gin.H{
			{"name": "NASCAR races", "path": "/races"},
			{"name": "PGA tournament results", "path": "/tournament-results"},
			{"name": "Steelers games", "path": "/football-games"},
			{"name": "Penguins games", "path": "/hockey-games"},
		},
	})
}
