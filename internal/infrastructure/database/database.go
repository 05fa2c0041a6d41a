package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/johnquangdev/fireflies-bridge/pkg/config"
)

// Open connects to the configured database (PostgreSQL or SQLite) using GORM
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := NewGormConfig(cfg.Server.Environment)

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.Database.URI), gormCfg)
	case "sqlite":
		db, err = NewSQLite(cfg.Database.URI, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get generic database object to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	if cfg.Database.Driver == "postgres" {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := pingWithBackoff(sqlDB, cfg.Database.ConnectTimeout); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✅ Database connected successfully (%s)", cfg.Database.Driver)

	return db, nil
}

// NewGormConfig returns the GORM settings shared by every connection
func NewGormConfig(environment string) *gorm.Config {
	gormLogger := logger.Default.LogMode(logger.Warn)
	if environment == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}
	return &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// NewSQLite opens a SQLite database through the pure-Go modernc driver.
// In-memory databases are pinned to a single connection so every query sees the same schema.
func NewSQLite(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	dsn = strings.TrimPrefix(dsn, "sqlite:///")

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	inMemory := dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
	if inMemory {
		sqlDB.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	if !inMemory {
		pragmas = append(pragmas, "PRAGMA journal_mode=WAL")
	}
	for _, pragma := range pragmas {
		if _, execErr := sqlDB.Exec(pragma); execErr != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", Conn: sqlDB}, gormCfg)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// pingWithBackoff waits for the database to accept connections, giving up after maxElapsed
func pingWithBackoff(sqlDB *sql.DB, maxElapsed time.Duration) error {
	if maxElapsed <= 0 {
		return sqlDB.Ping()
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = maxElapsed

	ctx, cancel := context.WithTimeout(context.Background(), maxElapsed+time.Second)
	defer cancel()

	return backoff.RetryNotify(func() error {
		return sqlDB.PingContext(ctx)
	}, backoff.WithContext(bo, ctx), func(err error, wait time.Duration) {
		log.Printf("⏳ Database not ready, retrying in %s: %v", wait, err)
	})
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("✅ Database connection closed")
	return nil
}
