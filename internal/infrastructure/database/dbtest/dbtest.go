// Package dbtest provides migrated in-memory SQLite databases for tests.
package dbtest

import (
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/fireflies-bridge/internal/infrastructure/database"
)

// New returns a fresh, fully migrated in-memory database closed at test cleanup
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLite(":memory:", &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if _, err := database.Migrate(db, "sqlite"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
