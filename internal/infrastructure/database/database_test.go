package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewSQLite(":memory:", &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDB(db) })
	return db
}

func TestMigrate_SQLite(t *testing.T) {
	db := newMemoryDB(t)

	n, err := Migrate(db, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.True(t, db.Migrator().HasTable("meetings"))
	assert.True(t, db.Migrator().HasTable("projects"))

	// Re-running is a no-op
	n, err = Migrate(db, "sqlite")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestReset_EmptiesTables(t *testing.T) {
	db := newMemoryDB(t)
	_, err := Migrate(db, "sqlite")
	require.NoError(t, err)

	require.NoError(t, db.Exec(
		"INSERT INTO meetings (project_id, meeting_url) VALUES (?, ?)",
		"P1", "https://meet.google.com/abc-defg-hij",
	).Error)

	require.NoError(t, Reset(db, "sqlite"))

	var count int64
	require.NoError(t, db.Table("meetings").Count(&count).Error)
	assert.Zero(t, count)
}

func TestMigrate_UnknownDriver(t *testing.T) {
	db := newMemoryDB(t)
	_, err := Migrate(db, "mysql")
	assert.Error(t, err)
}
