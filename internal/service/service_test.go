package service

import (
	"context"
	"testing"

	"brainvault/internal/models"
	"brainvault/internal/repository"
	"brainvault/internal/worker"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.ContentItem{},
		&models.ShareLink{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}

// stubEmbedder returns a fixed vector for every input.
type stubEmbedder struct {
	vec []float32
	err error
}

func (s *stubEmbedder) Embed(context.Context, string) ([]float32, error) {
	return s.vec, s.err
}

// syncQueue runs embed jobs inline so tests observe the backfill result
// without goroutine coordination.
type syncQueue struct {
	content repository.ContentRepository
	vec     models.Vector
	jobs    []worker.EmbedJob
}

func (q *syncQueue) Enqueue(job worker.EmbedJob) bool {
	q.jobs = append(q.jobs, job)
	if q.vec != nil {
		_ = q.content.SetEmbedding(context.Background(), job.ContentID, q.vec)
	}
	return true
}
