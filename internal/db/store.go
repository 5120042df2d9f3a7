// Package db provides GORM-based database operations for gradebook.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/thebtf/gradebook/internal/config"
)

// Store represents the GORM database connection.
type Store struct {
	DB    *gorm.DB
	sqlDB *sql.DB
}

// Config holds database configuration.
type Config struct {
	Driver   string          // sqlite (default), postgres, or mysql
	DSN      string          // driver-specific DSN; for sqlite this is the file path
	MaxConns int             // maximum number of open connections (default: 4)
	LogLevel logger.LogLevel // GORM log level (logger.Silent for tests)
}

// ConfigFromApp derives a store Config from application configuration.
func ConfigFromApp(app *config.Config) (Config, error) {
	dsn, err := app.DatabaseDSN()
	if err != nil {
		return Config{}, err
	}
	level := logger.Warn
	if app.EchoSQL {
		level = logger.Info
	}
	return Config{
		Driver:   app.Driver,
		DSN:      dsn,
		MaxConns: app.MaxConns,
		LogLevel: level,
	}, nil
}

// NewStore opens the database, configures the pool, and runs migrations so
// the schema exists before any caller touches it.
func NewStore(cfg Config) (*Store, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	maxConns := cfg.MaxConns
	if maxConns <= 0 {
		maxConns = 4
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns / 2)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Debug().Str("driver", cfg.Driver).Int("max_conns", maxConns).Msg("Database ready")

	return &Store{DB: db, sqlDB: sqlDB}, nil
}

// openDialector selects the GORM dialector for the configured driver.
func openDialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		return sqlite.Open(cfg.DSN), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.sqlDB.Close()
}

// Ping verifies the database connection is alive.
func (s *Store) Ping() error {
	return s.sqlDB.Ping()
}

// GetDB returns the GORM DB instance for standard queries.
func (s *Store) GetDB() *gorm.DB {
	return s.DB
}

// Transaction runs fn inside a single database transaction. Nothing staged
// by fn becomes durable unless fn returns nil.
func (s *Store) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.DB.WithContext(ctx).Transaction(fn)
}
