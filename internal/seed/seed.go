// Package seed provides database seeding utilities for development and demos.
package seed

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"brainvault/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	ItemsPerUser int
	ShouldClean  bool
}

// All seeded users share this password so demo logins are easy.
const seedPassword = "Password1!"

var contentTypes = []models.ContentType{
	models.ContentTypeAudio,
	models.ContentTypeArticle,
	models.ContentTypeTwitter,
	models.ContentTypeYoutube,
}

// Run populates the database with fake users, content, and a share link for
// the first user. Seeded items get random unit embeddings so semantic search
// returns something during demos.
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.NumUsers <= 0 {
		opts.NumUsers = 5
	}
	if opts.ItemsPerUser <= 0 {
		opts.ItemsPerUser = 10
	}

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("cleaning database: %w", err)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}

	for i := 0; i < opts.NumUsers; i++ {
		user := &models.User{
			// username constraint is 3-10 chars
			Username: fmt.Sprintf("%s%d", gofakeit.LetterN(6), gofakeit.Number(10, 99)),
			Password: string(hashed),
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("creating user: %w", err)
		}

		for j := 0; j < opts.ItemsPerUser; j++ {
			item := buildItem(r, user.ID)
			if err := db.Create(item).Error; err != nil {
				return fmt.Errorf("creating content for %s: %w", user.Username, err)
			}
		}

		if i == 0 {
			link := &models.ShareLink{
				Hash:   gofakeit.LetterN(20),
				UserID: user.ID,
			}
			if err := db.Create(link).Error; err != nil {
				return fmt.Errorf("creating share link: %w", err)
			}
			log.Printf("seeded share link /api/v1/brain/%s for user %s", link.Hash, user.Username)
		}

		log.Printf("seeded user %s (password %q) with %d items", user.Username, seedPassword, opts.ItemsPerUser)
	}

	return nil
}

func buildItem(r *rand.Rand, userID uint) *models.ContentItem {
	contentType := contentTypes[r.Intn(len(contentTypes))]

	var link string
	switch contentType {
	case models.ContentTypeYoutube:
		link = fmt.Sprintf("https://www.youtube.com/watch?v=%s", gofakeit.LetterN(11))
	case models.ContentTypeTwitter:
		link = fmt.Sprintf("https://twitter.com/%s/status/%d", gofakeit.Username(), gofakeit.Number(1_000_000, 9_999_999))
	default:
		link = gofakeit.URL()
	}

	return &models.ContentItem{
		Link:      link,
		Type:      contentType,
		Title:     gofakeit.Sentence(4),
		UserID:    userID,
		Embedding: randomUnitVector(r, 8),
	}
}

// randomUnitVector returns a normalized random vector so cosine scores stay
// in a sensible range.
func randomUnitVector(r *rand.Rand, dim int) models.Vector {
	vec := make(models.Vector, dim)
	var norm float64
	for i := range vec {
		vec[i] = float32(r.NormFloat64())
		norm += float64(vec[i]) * float64(vec[i])
	}
	if norm == 0 {
		vec[0] = 1
		return vec
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec
}

func clean(db *gorm.DB) error {
	tables := []string{"content_tags", "share_links", "content_items", "tags", "users"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	log.Println("cleared existing data")
	return nil
}
