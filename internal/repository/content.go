package repository

import (
	"context"

	"brainvault/internal/models"

	"gorm.io/gorm"
)

// ContentRepository defines persistence operations for content items.
type ContentRepository interface {
	Create(ctx context.Context, item *models.ContentItem) error
	// SetEmbedding updates the embedding column in place. Deleting the item
	// before the backfill lands makes this a no-op rather than an error.
	SetEmbedding(ctx context.Context, id uint, vec models.Vector) error
	ListByOwner(ctx context.Context, userID uint) ([]models.ContentItem, error)
	// ListEmbeddedByOwner returns up to limit of the owner's items that
	// already carry an embedding, newest first. Used as the candidate pool
	// for similarity search.
	ListEmbeddedByOwner(ctx context.Context, userID uint, limit int) ([]models.ContentItem, error)
	DeleteByIDAndOwner(ctx context.Context, id, userID uint) error
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository returns a new ContentRepository implementation.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, item *models.ContentItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *contentRepository) SetEmbedding(ctx context.Context, id uint, vec models.Vector) error {
	err := r.db.WithContext(ctx).
		Model(&models.ContentItem{}).
		Where("id = ?", id).
		Update("embedding", vec).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *contentRepository) ListByOwner(ctx context.Context, userID uint) ([]models.ContentItem, error) {
	var items []models.ContentItem
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Tags").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *contentRepository) ListEmbeddedByOwner(ctx context.Context, userID uint, limit int) ([]models.ContentItem, error) {
	var items []models.ContentItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND embedding IS NOT NULL", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *contentRepository) DeleteByIDAndOwner(ctx context.Context, id, userID uint) error {
	// Scoping the delete to the owner makes foreign and nonexistent IDs a
	// silent no-op, matching the API contract.
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.ContentItem{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
