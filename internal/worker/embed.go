// Package worker runs background jobs decoupled from the request/response
// lifecycle.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"brainvault/internal/embedding"
	"brainvault/internal/middleware"
	"brainvault/internal/observability"
	"brainvault/internal/repository"
)

// EmbedJob asks for the embedding of one content item to be backfilled.
type EmbedJob struct {
	ContentID uint
	Text      string
}

// EmbedWorker consumes embedding backfill jobs from a bounded queue. Failures
// are logged and counted; they never reach a response that has already been
// sent. There are no retries.
type EmbedWorker struct {
	embedder embedding.Embedder
	content  repository.ContentRepository
	jobs     chan EmbedJob
	done     chan struct{}

	mu      sync.Mutex
	closed  bool
	started bool
}

// NewEmbedWorker returns a worker with a queue of the given capacity.
func NewEmbedWorker(embedder embedding.Embedder, content repository.ContentRepository, queueSize int) *EmbedWorker {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &EmbedWorker{
		embedder: embedder,
		content:  content,
		jobs:     make(chan EmbedJob, queueSize),
		done:     make(chan struct{}),
	}
}

// Start launches the consumer goroutine. The worker stops when ctx is
// canceled or Shutdown is called.
func (w *EmbedWorker) Start(ctx context.Context) {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()

	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				return
			case job, ok := <-w.jobs:
				if !ok {
					return
				}
				w.process(ctx, job)
			}
		}
	}()
}

// Enqueue submits a job without blocking. It reports false when the queue is
// full or the worker has shut down; the item then simply keeps an unset
// embedding, which the search path tolerates.
func (w *EmbedWorker) Enqueue(job EmbedJob) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	select {
	case w.jobs <- job:
		return true
	default:
		observability.EmbeddingJobs.WithLabelValues("dropped").Inc()
		middleware.Logger.Warn("embedding queue full, dropping job",
			slog.Uint64("content_id", uint64(job.ContentID)))
		return false
	}
}

// Shutdown stops accepting jobs and waits for the queue to drain, bounded by
// ctx.
func (w *EmbedWorker) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.jobs)
	}
	started := w.started
	w.mu.Unlock()

	if !started {
		return nil
	}

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *EmbedWorker) process(ctx context.Context, job EmbedJob) {
	jobCtx, cancel := context.WithTimeout(ctx, embedding.RequestTimeout+time.Second)
	defer cancel()

	vec, err := w.embedder.Embed(jobCtx, job.Text)
	if err != nil {
		observability.EmbeddingJobs.WithLabelValues("provider_error").Inc()
		middleware.Logger.ErrorContext(jobCtx, "embedding backfill failed",
			slog.Uint64("content_id", uint64(job.ContentID)),
			slog.String("error", err.Error()))
		return
	}

	if err := w.content.SetEmbedding(jobCtx, job.ContentID, vec); err != nil {
		observability.EmbeddingJobs.WithLabelValues("store_error").Inc()
		middleware.Logger.ErrorContext(jobCtx, "embedding store failed",
			slog.Uint64("content_id", uint64(job.ContentID)),
			slog.String("error", err.Error()))
		return
	}

	observability.EmbeddingJobs.WithLabelValues("ok").Inc()
}
