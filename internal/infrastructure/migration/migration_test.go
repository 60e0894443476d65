package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestNewManager_PicksStrategyByEnvironment(t *testing.T) {
	assert.Equal(t, "gorm_auto_migrate", NewManager("development", "sqlite").GetStrategy().GetName())
	assert.Equal(t, "gorm_auto_migrate", NewManager("", "sqlite").GetStrategy().GetName())
	assert.Equal(t, "goose", NewManager("production", "mysql").GetStrategy().GetName())
}

func TestGormAutoMigrate_CreatesDirectoryTables(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, NewManager("development", "sqlite").Migrate(db))

	for _, table := range []string{"airlines", "offices", "contacts"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestGooseStrategy_UpAndDown(t *testing.T) {
	db := openTestDB(t)
	strategy := NewGooseStrategy("sqlite", "")

	require.NoError(t, strategy.Migrate(db))

	version, err := strategy.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	for _, table := range []string{"airlines", "offices", "contacts"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	// A second run is a no-op.
	require.NoError(t, strategy.Migrate(db))

	require.NoError(t, strategy.MigrateDown(db, 1))
	version, err = strategy.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
	assert.False(t, db.Migrator().HasTable("contacts"))
}

func TestGooseStrategy_CreateNeedsPath(t *testing.T) {
	assert.Error(t, NewGooseStrategy("sqlite", "").Create("add_index"))
}

func TestGooseStrategy_Create(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sqlite"), 0o755))

	require.NoError(t, NewGooseStrategy("sqlite", dir).Create("add_index"))

	matches, err := filepath.Glob(filepath.Join(dir, "sqlite", "*_add_index.sql"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
