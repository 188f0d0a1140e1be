// Package vector implements in-process cosine similarity ranking over
// embedding vectors.
package vector

import (
	"fmt"
	"math"
	"sort"
)

// CosineSimilarity computes the cosine similarity between two vectors. It
// returns an error if the vectors have different lengths or if either vector
// has zero magnitude.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector: cosine similarity dimension mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("vector: cosine similarity on empty vectors")
	}
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 0, fmt.Errorf("vector: cosine similarity with zero-magnitude vector")
	}
	return dot / (math.Sqrt(na2) * math.Sqrt(nb2)), nil
}

// Match pairs a candidate index with its similarity score against the query.
type Match struct {
	Index int
	Score float64
}

// Rank scores every candidate against the query by cosine similarity and
// returns the top k matches in descending score order. Candidates with a
// dimension mismatch or zero magnitude are skipped rather than failing the
// whole query.
func Rank(query []float32, candidates [][]float32, k int) []Match {
	matches := make([]Match, 0, len(candidates))
	for i, cand := range candidates {
		score, err := CosineSimilarity(query, cand)
		if err != nil {
			continue
		}
		matches = append(matches, Match{Index: i, Score: score})
	}

	sort.Slice(matches, func(a, b int) bool { return matches[a].Score > matches[b].Score })

	if k > 0 && k < len(matches) {
		matches = matches[:k]
	}
	return matches
}
