package models

import "time"

// ShareLink maps a random hash to a vault owner. The hash is the sole public
// capability granting read access to that user's content list and username.
// Application logic treats the first match per user as canonical.
type ShareLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Hash      string    `gorm:"uniqueIndex;not null" json:"hash"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
