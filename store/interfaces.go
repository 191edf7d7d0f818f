package store

import (
	"context"

	"github.com/poiesic/vaultsync/core"
)

// DocumentStore is a connection to an external document store that manages
// named collections of documents with associated vector embeddings.
type DocumentStore interface {
	// Heartbeat checks that the store is reachable and alive.
	// It must be called (and succeed) before any ingestion is attempted.
	Heartbeat(ctx context.Context) error

	// Collection returns a handle to the named collection, creating it on
	// the server if it does not exist.
	Collection(ctx context.Context, name string) (Collection, error)
}

// Collection provides operations on one named, server-managed group of
// documents. All calls are synchronous and blocking; the caller issues them
// one at a time.
type Collection interface {
	// Name returns the collection name.
	Name() string

	// Upsert inserts or replaces documents keyed by their ids.
	// Re-upserting an id overwrites the prior record.
	Upsert(ctx context.Context, docs ...core.Document) error

	// Ids returns the identifiers of every document in the collection.
	Ids(ctx context.Context) ([]string, error)

	// Delete removes the documents with the given ids.
	Delete(ctx context.Context, ids ...string) error

	// Query runs a similarity search with a precomputed embedding and
	// returns up to maxResults nearest matches as parallel arrays.
	Query(ctx context.Context, embedding []float32, maxResults int) (*QueryResponse, error)

	// Count returns the number of documents in the collection.
	Count(ctx context.Context) (int, error)
}

// QueryResponse holds the parallel result arrays returned by a similarity
// search. All slices have equal length except that Documents, Metadatas and
// Distances may be empty when the store omits them.
type QueryResponse struct {
	Ids       []string
	Documents []string
	Metadatas []map[string]any
	Distances []float64
}
