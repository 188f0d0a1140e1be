package repository

import (
	"context"
	"errors"

	"brainvault/internal/models"

	"gorm.io/gorm"
)

// ShareLinkRepository defines persistence operations for share links.
type ShareLinkRepository interface {
	// GetByOwner returns the canonical share link for a user: the oldest
	// matching row. Returns (nil, nil) when the user has no link.
	GetByOwner(ctx context.Context, userID uint) (*models.ShareLink, error)
	GetByHash(ctx context.Context, hash string) (*models.ShareLink, error)
	Create(ctx context.Context, link *models.ShareLink) error
	DeleteByOwner(ctx context.Context, userID uint) error
}

type shareLinkRepository struct {
	db *gorm.DB
}

// NewShareLinkRepository returns a new ShareLinkRepository implementation.
func NewShareLinkRepository(db *gorm.DB) ShareLinkRepository {
	return &shareLinkRepository{db: db}
}

func (r *shareLinkRepository) GetByOwner(ctx context.Context, userID uint) (*models.ShareLink, error) {
	var link models.ShareLink
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &link, nil
}

func (r *shareLinkRepository) GetByHash(ctx context.Context, hash string) (*models.ShareLink, error) {
	var link models.ShareLink
	err := r.db.WithContext(ctx).Where("hash = ?", hash).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &link, nil
}

func (r *shareLinkRepository) Create(ctx context.Context, link *models.ShareLink) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *shareLinkRepository) DeleteByOwner(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.ShareLink{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
