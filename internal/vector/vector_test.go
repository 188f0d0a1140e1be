package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		s, err := CosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, s, 1e-9)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		s, err := CosineSimilarity([]float32{1, 0}, []float32{0, 1})
		require.NoError(t, err)
		assert.InDelta(t, 0.0, s, 1e-9)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		s, err := CosineSimilarity([]float32{1, 1}, []float32{-1, -1})
		require.NoError(t, err)
		assert.InDelta(t, -1.0, s, 1e-9)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3})
		assert.Error(t, err)
	})

	t.Run("zero magnitude", func(t *testing.T) {
		_, err := CosineSimilarity([]float32{0, 0}, []float32{1, 2})
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := CosineSimilarity(nil, nil)
		assert.Error(t, err)
	})
}

func TestRank(t *testing.T) {
	query := []float32{1, 0}
	candidates := [][]float32{
		{0, 1},            // orthogonal, score 0
		{1, 0},            // identical, score 1
		{1, 1},            // score ~0.707
		{0, 0},            // zero magnitude, skipped
		{1, 0, 0},         // dimension mismatch, skipped
		{-1, 0},           // opposite, score -1
	}

	matches := Rank(query, candidates, 0)
	require.Len(t, matches, 4)

	assert.Equal(t, 1, matches[0].Index)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-9)
	assert.Equal(t, 2, matches[1].Index)
	assert.InDelta(t, math.Sqrt2/2, matches[1].Score, 1e-9)
	assert.Equal(t, 0, matches[2].Index)
	assert.Equal(t, 5, matches[3].Index)

	t.Run("truncates to k", func(t *testing.T) {
		top2 := Rank(query, candidates, 2)
		require.Len(t, top2, 2)
		assert.Equal(t, 1, top2[0].Index)
		assert.Equal(t, 2, top2[1].Index)
	})

	t.Run("empty candidates", func(t *testing.T) {
		assert.Empty(t, Rank(query, nil, 10))
	})
}
