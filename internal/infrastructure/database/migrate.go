package database

import (
	"embed"
	"fmt"
	"log"

	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/gorm"
)

//go:embed migrations
var migrationFS embed.FS

// migrationSource returns the embedded migrations and sql-migrate dialect for a driver
func migrationSource(driver string) (migrate.MigrationSource, string, error) {
	switch driver {
	case "postgres":
		return &migrate.EmbedFileSystemMigrationSource{FileSystem: migrationFS, Root: "migrations/postgres"}, "postgres", nil
	case "sqlite":
		return &migrate.EmbedFileSystemMigrationSource{FileSystem: migrationFS, Root: "migrations/sqlite"}, "sqlite3", nil
	default:
		return nil, "", fmt.Errorf("no migrations for driver %q", driver)
	}
}

// Migrate applies all pending migrations and returns how many ran
func Migrate(db *gorm.DB, driver string) (int, error) {
	source, dialect, err := migrationSource(driver)
	if err != nil {
		return 0, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate up, error: %v", err)
	}

	n, err := migrate.Exec(sqlDB, dialect, source, migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migration, error: %v", err)
	}

	log.Printf("✅ Applied %d migrations!\n", n)
	return n, nil
}

// Reset rolls every migration back and re-applies them, leaving empty tables
func Reset(db *gorm.DB, driver string) error {
	source, dialect, err := migrationSource(driver)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get db connection during reset, error: %v", err)
	}

	if _, err := migrate.ExecMax(sqlDB, dialect, source, migrate.Down, 0); err != nil {
		return fmt.Errorf("failed to roll back migrations, error: %v", err)
	}
	if _, err := migrate.Exec(sqlDB, dialect, source, migrate.Up); err != nil {
		return fmt.Errorf("failed to re-apply migrations, error: %v", err)
	}
	return nil
}
