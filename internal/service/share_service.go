package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"brainvault/internal/cache"
	"brainvault/internal/models"
	"brainvault/internal/repository"
)

const shareHashBytes = 10

// ShareView is the public read-only snapshot served for a share hash.
type ShareView struct {
	Username string               `json:"username"`
	Content  []models.ContentItem `json:"content"`
}

// ShareService toggles and resolves public share links.
type ShareService struct {
	shareRepo   repository.ShareLinkRepository
	userRepo    repository.UserRepository
	contentRepo repository.ContentRepository
}

// NewShareService returns a ShareService.
func NewShareService(shareRepo repository.ShareLinkRepository, userRepo repository.UserRepository, contentRepo repository.ContentRepository) *ShareService {
	return &ShareService{
		shareRepo:   shareRepo,
		userRepo:    userRepo,
		contentRepo: contentRepo,
	}
}

// Enable returns the user's share hash, creating one if none exists.
// Enabling twice returns the same hash.
func (s *ShareService) Enable(ctx context.Context, userID uint) (string, error) {
	existing, err := s.shareRepo.GetByOwner(ctx, userID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.Hash, nil
	}

	hash, err := generateHash()
	if err != nil {
		return "", models.NewInternalError(err)
	}

	link := &models.ShareLink{Hash: hash, UserID: userID}
	if err := s.shareRepo.Create(ctx, link); err != nil {
		return "", err
	}
	return hash, nil
}

// Disable deletes the user's share link, if any, and drops the cached public
// view so the hash stops resolving immediately.
func (s *ShareService) Disable(ctx context.Context, userID uint) error {
	existing, err := s.shareRepo.GetByOwner(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.shareRepo.DeleteByOwner(ctx, userID); err != nil {
		return err
	}

	if existing != nil {
		cache.InvalidateShareView(ctx, existing.Hash)
	}
	return nil
}

// Resolve maps a share hash to the owner's username and full content list.
// The view is cached briefly; content saved after a cached read shows up once
// the entry expires.
func (s *ShareService) Resolve(ctx context.Context, hash string) (*ShareView, error) {
	var view ShareView
	err := cache.Aside(ctx, cache.ShareViewKey(hash), &view, cache.ShareViewTTL, func() error {
		link, err := s.shareRepo.GetByHash(ctx, hash)
		if err != nil {
			return err
		}
		if link == nil {
			return models.NewNotFoundError("Share link", hash)
		}

		owner, err := s.userRepo.GetByID(ctx, link.UserID)
		if err != nil {
			return err
		}

		content, err := s.contentRepo.ListByOwner(ctx, link.UserID)
		if err != nil {
			return err
		}

		view = ShareView{Username: owner.Username, Content: content}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func generateHash() (string, error) {
	buf := make([]byte, shareHashBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate share hash: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
