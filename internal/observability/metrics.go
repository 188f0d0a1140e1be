// Package observability exposes Prometheus metrics for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EmbeddingJobs counts background embedding backfill jobs by outcome.
	EmbeddingJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brainvault_embedding_jobs_total",
		Help: "Total number of embedding backfill jobs by outcome",
	}, []string{"outcome"})

	// EmbeddingLatency records latency of embedding provider calls.
	EmbeddingLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "brainvault_embedding_latency_seconds",
		Help:    "Embedding provider call latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// SearchQueries counts semantic search requests by outcome.
	SearchQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brainvault_search_queries_total",
		Help: "Total number of semantic search queries by outcome",
	}, []string{"outcome"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brainvault_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)
