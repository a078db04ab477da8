// Package database provides database connection management.
//
// Production runs against PostgreSQL, configured either by DATABASE_URL or
// by the discrete DB_* variables. When neither is set the connection falls
// back to a local SQLite file so the app can run with zero configuration.
package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appConfig "github.com/steelcity/sports-results/internal/config"
	"github.com/steelcity/sports-results/pkg/retry"
)

// Config holds database connection configuration.
type Config struct {
	// URL is a full connection URL (postgres://...). Takes precedence.
	URL string
	// Discrete PostgreSQL connection fields, used when URL is empty.
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
	// SQLitePath is the fallback database file when no PostgreSQL
	// configuration is present.
	SQLitePath string

	// Connection pool limits.
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		URL:        appConfig.GetEnv("DATABASE_URL", ""),
		Host:       appConfig.GetEnv("DB_HOST", ""),
		User:       appConfig.GetEnv("DB_USER", "postgres"),
		Password:   appConfig.GetEnv("DB_PASSWORD", "postgres"),
		DBName:     appConfig.GetEnv("DB_NAME", "sports_results"),
		Port:       appConfig.GetEnv("DB_PORT", "5432"),
		SSLMode:    appConfig.GetEnv("DB_SSLMODE", "disable"),
		TimeZone:   appConfig.GetEnv("DB_TIMEZONE", "UTC"),
		SQLitePath: appConfig.GetEnv("SQLITE_PATH", "sports_results.db"),

		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// IsPostgres reports whether the configuration targets PostgreSQL.
func (c Config) IsPostgres() bool {
	return c.URL != "" || c.Host != ""
}

// BuildDSN constructs the PostgreSQL DSN from configuration.
func BuildDSN(cfg Config) string {
	if cfg.URL != "" {
		// Heroku-era postgres:// URLs still appear in the wild.
		if strings.HasPrefix(cfg.URL, "postgres://") {
			return "postgresql://" + strings.TrimPrefix(cfg.URL, "postgres://")
		}
		return cfg.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
}

// New creates a database connection using environment variables.
func New(ctx context.Context) (*gorm.DB, error) {
	return NewWithConfig(ctx, LoadConfigFromEnv())
}

// NewWithConfig creates a database connection with custom configuration,
// retrying while the database is still starting up.
func NewWithConfig(ctx context.Context, cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.IsPostgres() {
		dialector = postgres.Open(BuildDSN(cfg))
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	var db *gorm.DB
	err := retry.Do(ctx, retry.DatabaseConfig(), func() error {
		var openErr error
		db, openErr = gorm.Open(dialector, &gorm.Config{})
		return openErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := setupPool(db, cfg); err != nil {
		return nil, err
	}

	return db, nil
}

func setupPool(db *gorm.DB, cfg Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	return nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
