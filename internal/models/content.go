package models

import (
	"time"

	"gorm.io/gorm"
)

// ContentType enumerates the kinds of saved items.
type ContentType string

const (
	ContentTypeAudio   ContentType = "audio"
	ContentTypeArticle ContentType = "article"
	ContentTypeTwitter ContentType = "twitter"
	ContentTypeYoutube ContentType = "youtube"
)

// ValidContentType reports whether t is one of the supported content types.
func ValidContentType(t string) bool {
	switch ContentType(t) {
	case ContentTypeAudio, ContentTypeArticle, ContentTypeTwitter, ContentTypeYoutube:
		return true
	}
	return false
}

// ContentItem represents a saved link in a user's vault. Embedding starts
// unset and is backfilled once by the background worker after creation.
type ContentItem struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Link      string      `gorm:"not null" json:"link"`
	Type      ContentType `gorm:"not null" json:"type"`
	Title     string      `gorm:"not null" json:"title"`
	Tags      []Tag       `gorm:"many2many:content_tags" json:"tags"`
	UserID    uint        `gorm:"not null;index" json:"user_id"`
	User      User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Embedding Vector      `gorm:"type:text" json:"embedding,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Tag is referenced by content items but never populated by any handler.
// Kept for schema compatibility with the data model.
type Tag struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"unique;not null" json:"title"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
