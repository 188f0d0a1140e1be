package repository

import (
	"context"
	"errors"
	"testing"

	"brainvault/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "alice", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	t.Run("GetByUsername", func(t *testing.T) {
		fetched, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, user.ID, fetched.ID)
		assert.Equal(t, "hash", fetched.Password)
	})

	t.Run("GetByUsername absent", func(t *testing.T) {
		fetched, err := repo.GetByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, fetched)
	})

	t.Run("GetByID", func(t *testing.T) {
		fetched, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", fetched.Username)
	})

	t.Run("GetByID absent", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "bob", Password: "h1"}))

	err := repo.Create(ctx, &models.User{Username: "bob", Password: "h2"})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestIsUniqueConstraintError(t *testing.T) {
	assert.False(t, isUniqueConstraintError(nil))
	assert.False(t, isUniqueConstraintError(errors.New("connection refused")))
	assert.True(t, isUniqueConstraintError(errors.New(`duplicate key value violates unique constraint "users_username_key"`)))
	assert.True(t, isUniqueConstraintError(errors.New("UNIQUE constraint failed: users.username")))
	assert.True(t, isUniqueConstraintError(errors.New("SQLSTATE 23505")))
}
