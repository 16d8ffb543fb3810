package repository

import (
	"context"
	"errors"
	"testing"

	"gsvblog/internal/database"
	"gsvblog/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with foreign keys
// enabled and the full schema applied. The pool is pinned to one
// connection so every query sees the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// createUser inserts an account directly, bypassing the service layer.
func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "hashed-password"}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createPost inserts a post directly.
func createPost(t *testing.T, db *gorm.DB, author, title, content string) *models.Post {
	t.Helper()
	post := &models.Post{Author: author, Title: title, Content: content}
	require.NoError(t, db.Create(post).Error)
	return post
}

// requireAppErrorCode asserts that err unwraps to an AppError with the given code.
func requireAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.Code)
}

func ctx() context.Context {
	return context.Background()
}
