// Package service implements the application's business logic on top of the
// repositories.
package service

import (
	"context"
	"strings"

	"brainvault/internal/embedding"
	"brainvault/internal/models"
	"brainvault/internal/observability"
	"brainvault/internal/repository"
	"brainvault/internal/vector"
	"brainvault/internal/worker"
)

// Search tuning. The candidate pool and rank limit mirror the retrieval
// parameters of the hosted vector index this replaces.
const (
	searchCandidatePool = 200
	searchRankLimit     = 50
	searchMinScore      = 0.75
	searchMaxResults    = 10
)

// EmbedQueue accepts embedding backfill jobs. Satisfied by worker.EmbedWorker.
type EmbedQueue interface {
	Enqueue(job worker.EmbedJob) bool
}

// SearchResult pairs a content item with its similarity score.
type SearchResult struct {
	Item  models.ContentItem `json:"item"`
	Score float64            `json:"score"`
}

// ContentService handles content creation, listing, deletion, and semantic
// search.
type ContentService struct {
	contentRepo repository.ContentRepository
	embedder    embedding.Embedder
	queue       EmbedQueue
}

// NewContentService returns a ContentService. queue may be nil, in which case
// new items simply never receive an embedding.
func NewContentService(contentRepo repository.ContentRepository, embedder embedding.Embedder, queue EmbedQueue) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		embedder:    embedder,
		queue:       queue,
	}
}

// CreateInput describes a content-creation request.
type CreateInput struct {
	UserID uint
	Link   string
	Type   string
	Title  string
}

// Create stores a new content item with an unset embedding and enqueues the
// asynchronous backfill. The caller gets a response before the embedding
// exists; backfill failures never surface to the caller.
func (s *ContentService) Create(ctx context.Context, in CreateInput) (*models.ContentItem, error) {
	if in.Link == "" || in.Title == "" {
		return nil, models.NewValidationError("Link and title are required")
	}
	if !models.ValidContentType(in.Type) {
		return nil, models.NewValidationError("Type must be one of: audio, article, twitter, youtube")
	}

	item := &models.ContentItem{
		Link:   in.Link,
		Type:   models.ContentType(in.Type),
		Title:  in.Title,
		Tags:   []models.Tag{},
		UserID: in.UserID,
	}

	if err := s.contentRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	if s.queue != nil {
		s.queue.Enqueue(worker.EmbedJob{
			ContentID: item.ID,
			Text:      embedding.Prompt(item.Title, item.Type),
		})
	}

	return item, nil
}

// List returns the caller's items, newest first, with owner resolved.
func (s *ContentService) List(ctx context.Context, userID uint) ([]models.ContentItem, error) {
	return s.contentRepo.ListByOwner(ctx, userID)
}

// Delete removes one item scoped to the caller. Unknown and foreign IDs are a
// silent no-op.
func (s *ContentService) Delete(ctx context.Context, userID, contentID uint) error {
	return s.contentRepo.DeleteByIDAndOwner(ctx, contentID, userID)
}

// Search embeds the query and ranks the caller's items by cosine similarity.
// Results are capped at ten, filtered to scores of at least 0.75, descending.
func (s *ContentService) Search(ctx context.Context, userID uint, query string) ([]SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.NewValidationError("Query is required")
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		observability.SearchQueries.WithLabelValues("provider_error").Inc()
		return nil, err
	}

	candidates, err := s.contentRepo.ListEmbeddedByOwner(ctx, userID, searchCandidatePool)
	if err != nil {
		observability.SearchQueries.WithLabelValues("db_error").Inc()
		return nil, err
	}

	vecs := make([][]float32, len(candidates))
	for i := range candidates {
		vecs[i] = candidates[i].Embedding
	}

	matches := vector.Rank(queryVec, vecs, searchRankLimit)

	results := make([]SearchResult, 0, searchMaxResults)
	for _, m := range matches {
		if m.Score < searchMinScore {
			break
		}
		results = append(results, SearchResult{Item: candidates[m.Index], Score: m.Score})
		if len(results) == searchMaxResults {
			break
		}
	}

	observability.SearchQueries.WithLabelValues("ok").Inc()
	return results, nil
}
