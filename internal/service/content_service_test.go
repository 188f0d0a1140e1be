package service

import (
	"context"
	"errors"
	"testing"

	"brainvault/internal/models"
	"brainvault/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_Create(t *testing.T) {
	db := setupTestDB(t)
	contentRepo := repository.NewContentRepository(db)
	owner := createTestUser(t, db, "alice")
	ctx := context.Background()

	queue := &syncQueue{content: contentRepo}
	svc := NewContentService(contentRepo, &stubEmbedder{}, queue)

	item, err := svc.Create(ctx, CreateInput{
		UserID: owner.ID,
		Link:   "http://example.com/post",
		Type:   "article",
		Title:  "a good read",
	})
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Nil(t, item.Embedding)
	assert.Empty(t, item.Tags)

	require.Len(t, queue.jobs, 1)
	assert.Equal(t, item.ID, queue.jobs[0].ContentID)
	assert.Equal(t, "a good read article blog post reading", queue.jobs[0].Text)
}

func TestContentService_CreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContentService(repository.NewContentRepository(db), &stubEmbedder{}, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{UserID: 1, Link: "http://x", Type: "podcast", Title: "t"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.(*models.AppError).Code)

	_, err = svc.Create(ctx, CreateInput{UserID: 1, Type: "article", Title: "t"})
	require.Error(t, err)

	_, err = svc.Create(ctx, CreateInput{UserID: 1, Link: "http://x", Type: "article"})
	require.Error(t, err)
}

func TestContentService_Search(t *testing.T) {
	db := setupTestDB(t)
	contentRepo := repository.NewContentRepository(db)
	owner := createTestUser(t, db, "alice")
	other := createTestUser(t, db, "bob")
	ctx := context.Background()

	seed := func(userID uint, title string, vec models.Vector) {
		item := &models.ContentItem{Link: "http://x", Type: models.ContentTypeArticle, Title: title, UserID: userID}
		require.NoError(t, contentRepo.Create(ctx, item))
		if vec != nil {
			require.NoError(t, contentRepo.SetEmbedding(ctx, item.ID, vec))
		}
	}

	seed(owner.ID, "exact", models.Vector{1, 0, 0})
	seed(owner.ID, "close", models.Vector{0.9, 0.1, 0})
	seed(owner.ID, "far", models.Vector{0, 1, 0})
	seed(owner.ID, "pending", nil)
	seed(other.ID, "foreign exact", models.Vector{1, 0, 0})

	svc := NewContentService(contentRepo, &stubEmbedder{vec: []float32{1, 0, 0}}, nil)

	results, err := svc.Search(ctx, owner.ID, "anything")
	require.NoError(t, err)
	require.Len(t, results, 2, "low-score and unembedded items excluded")

	assert.Equal(t, "exact", results[0].Item.Title)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
	assert.Equal(t, "close", results[1].Item.Title)
	assert.GreaterOrEqual(t, results[1].Score, 0.75)
	assert.True(t, results[0].Score >= results[1].Score, "descending order")

	for _, r := range results {
		assert.Equal(t, owner.ID, r.Item.UserID, "results stay within the caller's vault")
	}
}

func TestContentService_SearchCapsAtTen(t *testing.T) {
	db := setupTestDB(t)
	contentRepo := repository.NewContentRepository(db)
	owner := createTestUser(t, db, "alice")
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		item := &models.ContentItem{Link: "http://x", Type: models.ContentTypeArticle, Title: "t", UserID: owner.ID}
		require.NoError(t, contentRepo.Create(ctx, item))
		require.NoError(t, contentRepo.SetEmbedding(ctx, item.ID, models.Vector{1, 0}))
	}

	svc := NewContentService(contentRepo, &stubEmbedder{vec: []float32{1, 0}}, nil)
	results, err := svc.Search(ctx, owner.ID, "q")
	require.NoError(t, err)
	assert.Len(t, results, 10)
}

func TestContentService_SearchErrors(t *testing.T) {
	db := setupTestDB(t)
	contentRepo := repository.NewContentRepository(db)
	ctx := context.Background()

	t.Run("empty query", func(t *testing.T) {
		svc := NewContentService(contentRepo, &stubEmbedder{}, nil)
		_, err := svc.Search(ctx, 1, "   ")
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", err.(*models.AppError).Code)
	})

	t.Run("provider failure", func(t *testing.T) {
		svc := NewContentService(contentRepo, &stubEmbedder{err: models.NewProviderError(errors.New("timeout"))}, nil)
		_, err := svc.Search(ctx, 1, "q")
		require.Error(t, err)
		assert.Equal(t, "PROVIDER_ERROR", err.(*models.AppError).Code)
	})
}

func TestContentService_Delete(t *testing.T) {
	db := setupTestDB(t)
	contentRepo := repository.NewContentRepository(db)
	owner := createTestUser(t, db, "alice")
	ctx := context.Background()

	svc := NewContentService(contentRepo, &stubEmbedder{}, nil)

	item, err := svc.Create(ctx, CreateInput{UserID: owner.ID, Link: "http://x", Type: "article", Title: "t"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner.ID, item.ID))

	items, err := svc.List(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Deleting again stays silent.
	assert.NoError(t, svc.Delete(ctx, owner.ID, item.ID))
}
