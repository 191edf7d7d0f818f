// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/vaultsync/ai"
	"github.com/poiesic/vaultsync/core"
	"github.com/poiesic/vaultsync/store"
)

// Searcher runs similarity searches against one collection and shapes the
// store's parallel result arrays into per-result records.
type Searcher struct {
	collection store.Collection
	embedder   ai.Embedder
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a searcher over the given collection. The embedder is
// used to vectorize free-text queries before the similarity search.
func NewSearcher(collection store.Collection, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if collection == nil {
		return nil, ErrCollectionRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		collection: collection,
		embedder:   embedder,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Query vectorizes the query text and returns up to maxResults nearest
// matches, ranked by the store.
func (s *Searcher) Query(ctx context.Context, query string, maxResults int) ([]core.QueryResult, error) {
	if maxResults < 1 {
		return nil, ErrInvalidMaxResults
	}

	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "err", err)
		return nil, err
	}

	return s.QueryVector(ctx, embedding, maxResults)
}

// QueryVector runs a similarity search with a precomputed embedding.
// Zero matches yields an empty slice, not an error.
func (s *Searcher) QueryVector(ctx context.Context, embedding []float32, maxResults int) ([]core.QueryResult, error) {
	if maxResults < 1 {
		return nil, ErrInvalidMaxResults
	}

	resp, err := s.collection.Query(ctx, embedding, maxResults)
	if err != nil {
		s.logger.Error("error querying collection", "collection", s.collection.Name(), "err", err)
		return nil, err
	}

	results := formatResults(resp)
	s.logger.Debug("query complete", "collection", s.collection.Name(), "hits", len(results))
	return results, nil
}

// formatResults zips the store's parallel arrays into one ordered record
// per match. Arrays the store omitted are filled with zero values rather
// than failing.
func formatResults(resp *store.QueryResponse) []core.QueryResult {
	results := make([]core.QueryResult, len(resp.Ids))
	for i, id := range resp.Ids {
		result := core.QueryResult{Id: id, Metadata: map[string]any{}}
		if i < len(resp.Documents) {
			result.Document = resp.Documents[i]
		}
		if i < len(resp.Metadatas) && resp.Metadatas[i] != nil {
			result.Metadata = resp.Metadatas[i]
		}
		if i < len(resp.Distances) {
			result.Distance = resp.Distances[i]
		}
		results[i] = result
	}
	return results
}
