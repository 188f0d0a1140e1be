package repository

import (
	"context"
	"testing"
	"time"

	"brainvault/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "alice")

	first := &models.ContentItem{Link: "http://a", Type: models.ContentTypeArticle, Title: "first", UserID: owner.ID}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)
	assert.Nil(t, first.Embedding, "embedding starts unset")

	second := &models.ContentItem{Link: "http://b", Type: models.ContentTypeYoutube, Title: "second", UserID: owner.ID}
	require.NoError(t, repo.Create(ctx, second))
	// Force distinct creation order for the newest-first assertion.
	require.NoError(t, db.Model(second).Update("created_at", first.CreatedAt.Add(time.Second)).Error)

	items, err := repo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Title, "newest first")
	assert.Equal(t, "alice", items[0].User.Username, "owner resolved")
	assert.Empty(t, items[0].Tags)
}

func TestContentRepository_OwnerScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	item := &models.ContentItem{Link: "http://a", Type: models.ContentTypeArticle, Title: "hers", UserID: alice.ID}
	require.NoError(t, repo.Create(ctx, item))

	items, err := repo.ListByOwner(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, items, "bob never sees alice's items")

	// Foreign delete is a silent no-op.
	require.NoError(t, repo.DeleteByIDAndOwner(ctx, item.ID, bob.ID))
	items, err = repo.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	// Owner delete removes it.
	require.NoError(t, repo.DeleteByIDAndOwner(ctx, item.ID, alice.ID))
	items, err = repo.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Nonexistent delete is also a silent no-op.
	require.NoError(t, repo.DeleteByIDAndOwner(ctx, 9999, alice.ID))
}

func TestContentRepository_SetEmbedding(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "alice")
	item := &models.ContentItem{Link: "http://a", Type: models.ContentTypeArticle, Title: "t", UserID: owner.ID}
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, repo.SetEmbedding(ctx, item.ID, models.Vector{0.1, 0.2, 0.3}))

	var stored models.ContentItem
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, models.Vector{0.1, 0.2, 0.3}, stored.Embedding)

	// Row deleted before the backfill lands: no error.
	require.NoError(t, repo.DeleteByIDAndOwner(ctx, item.ID, owner.ID))
	assert.NoError(t, repo.SetEmbedding(ctx, item.ID, models.Vector{0.4}))
}

func TestContentRepository_ListEmbeddedByOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "alice")

	embedded := &models.ContentItem{Link: "http://a", Type: models.ContentTypeArticle, Title: "embedded", UserID: owner.ID}
	require.NoError(t, repo.Create(ctx, embedded))
	require.NoError(t, repo.SetEmbedding(ctx, embedded.ID, models.Vector{1, 0}))

	pending := &models.ContentItem{Link: "http://b", Type: models.ContentTypeArticle, Title: "pending", UserID: owner.ID}
	require.NoError(t, repo.Create(ctx, pending))

	items, err := repo.ListEmbeddedByOwner(ctx, owner.ID, 200)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "embedded", items[0].Title)
}
