package database

import (
	"path/filepath"
	"testing"

	"gsvblog/internal/config"
	"gsvblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestConnect_SQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "blog.db")

	cfg := &config.Config{
		DBDriver:   "sqlite",
		SQLitePath: path,
	}

	db, err := Connect(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	for _, table := range []string{"users", "posts", "comments", "likes"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}

func TestMigrate_UniqueConstraints(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, Migrate(db))

	// Username uniqueness is a schema constraint, not an application check.
	require.NoError(t, db.Create(&models.User{Username: "alice", Password: "x"}).Error)
	assert.Error(t, db.Create(&models.User{Username: "alice", Password: "y"}).Error)

	// (post_id, user_id) uniqueness on likes likewise.
	require.NoError(t, db.Create(&models.Post{Author: "alice", Title: "t", Content: "c"}).Error)
	require.NoError(t, db.Create(&models.Like{PostID: 1, UserID: 1}).Error)
	assert.Error(t, db.Create(&models.Like{PostID: 1, UserID: 1}).Error)
	assert.NoError(t, db.Create(&models.Like{PostID: 1, UserID: 2}).Error)
}
