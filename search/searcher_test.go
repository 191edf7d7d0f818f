package search

import (
	"context"
	"errors"
	"testing"

	aimock "github.com/poiesic/vaultsync/ai/mock"
	"github.com/poiesic/vaultsync/store"
	storemock "github.com/poiesic/vaultsync/store/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearcher_Validation(t *testing.T) {
	_, err := NewSearcher(nil, aimock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrCollectionRequired)

	_, err = NewSearcher(storemock.NewMockCollection(), nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestSearcher_Query(t *testing.T) {
	col := storemock.NewMockCollection()
	col.QueryFunc = func(ctx context.Context, embedding []float32, maxResults int) (*store.QueryResponse, error) {
		assert.NotEmpty(t, embedding)
		assert.Equal(t, 2, maxResults)
		return &store.QueryResponse{
			Ids:       []string{"fruit/pineapple", "fruit/oranges"},
			Documents: []string{"all about pineapple", "all about oranges"},
			Metadatas: []map[string]any{
				{"filename": "pineapple.md"},
				{"filename": "oranges.md"},
			},
			Distances: []float64{0.31, 0.58},
		}, nil
	}

	s, err := NewSearcher(col, aimock.NewMockEmbedder())
	require.NoError(t, err)

	results, err := s.Query(context.Background(), "hawaii", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "fruit/pineapple", results[0].Id)
	assert.Equal(t, "all about pineapple", results[0].Document)
	assert.Equal(t, "pineapple.md", results[0].Metadata["filename"])
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Distance, 0.0)
	}
}

func TestSearcher_Query_NoMatches(t *testing.T) {
	col := storemock.NewMockCollection()

	s, err := NewSearcher(col, aimock.NewMockEmbedder())
	require.NoError(t, err)

	results, err := s.Query(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results, "zero matches is an empty sequence, not an error")
}

func TestSearcher_Query_EmbedderFailure(t *testing.T) {
	embedder := aimock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedding service down")
	}

	s, err := NewSearcher(storemock.NewMockCollection(), embedder)
	require.NoError(t, err)

	_, err = s.Query(context.Background(), "query", 3)
	assert.Error(t, err)
}

func TestSearcher_QueryVector_SparseArrays(t *testing.T) {
	col := storemock.NewMockCollection()
	col.QueryFunc = func(ctx context.Context, embedding []float32, maxResults int) (*store.QueryResponse, error) {
		// The store may omit documents, metadatas or distances entirely.
		return &store.QueryResponse{Ids: []string{"a", "b"}}, nil
	}

	s, err := NewSearcher(col, aimock.NewMockEmbedder())
	require.NoError(t, err)

	results, err := s.QueryVector(context.Background(), []float32{0.1}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Empty(t, results[0].Document)
	assert.NotNil(t, results[0].Metadata)
	assert.Zero(t, results[0].Distance)
}

func TestSearcher_InvalidMaxResults(t *testing.T) {
	s, err := NewSearcher(storemock.NewMockCollection(), aimock.NewMockEmbedder())
	require.NoError(t, err)

	_, err = s.Query(context.Background(), "q", 0)
	assert.ErrorIs(t, err, ErrInvalidMaxResults)

	_, err = s.QueryVector(context.Background(), []float32{0.1}, -1)
	assert.ErrorIs(t, err, ErrInvalidMaxResults)
}
