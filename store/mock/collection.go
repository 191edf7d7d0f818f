package mock

import (
	"context"

	"github.com/poiesic/vaultsync/core"
	"github.com/poiesic/vaultsync/store"
)

// MockCollection is a test double for store.Collection.
// It records upserted documents in memory and allows custom behavior
// injection via function fields.
type MockCollection struct {
	// CollectionName is returned by Name. Defaults to "notes".
	CollectionName string

	// UpsertFunc is called by Upsert if set.
	UpsertFunc func(ctx context.Context, docs ...core.Document) error

	// IdsFunc is called by Ids if set.
	IdsFunc func(ctx context.Context) ([]string, error)

	// DeleteFunc is called by Delete if set.
	DeleteFunc func(ctx context.Context, ids ...string) error

	// QueryFunc is called by Query if set.
	QueryFunc func(ctx context.Context, embedding []float32, maxResults int) (*store.QueryResponse, error)

	// CountFunc is called by Count if set.
	CountFunc func(ctx context.Context) (int, error)

	// Docs holds the documents upserted through the default Upsert path,
	// keyed by id.
	Docs map[string]core.Document

	// UpsertBatches records the size of every batch passed to Upsert.
	UpsertBatches []int

	// DeleteBatches records the ids passed to every Delete call.
	DeleteBatches [][]string
}

var _ store.Collection = (*MockCollection)(nil)

// NewMockCollection creates a mock collection with default in-memory behavior.
func NewMockCollection() *MockCollection {
	return &MockCollection{
		CollectionName: "notes",
		Docs:           make(map[string]core.Document),
	}
}

// Name returns the configured collection name.
func (m *MockCollection) Name() string {
	return m.CollectionName
}

// Upsert stores the documents in memory, or delegates to UpsertFunc.
func (m *MockCollection) Upsert(ctx context.Context, docs ...core.Document) error {
	m.UpsertBatches = append(m.UpsertBatches, len(docs))
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, docs...)
	}
	for _, doc := range docs {
		m.Docs[doc.Id] = doc
	}
	return nil
}

// Ids returns the ids of every stored document, or delegates to IdsFunc.
func (m *MockCollection) Ids(ctx context.Context) ([]string, error) {
	if m.IdsFunc != nil {
		return m.IdsFunc(ctx)
	}
	ids := make([]string, 0, len(m.Docs))
	for id := range m.Docs {
		ids = append(ids, id)
	}
	return ids, nil
}

// Delete removes the documents from memory, or delegates to DeleteFunc.
func (m *MockCollection) Delete(ctx context.Context, ids ...string) error {
	m.DeleteBatches = append(m.DeleteBatches, ids)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ids...)
	}
	for _, id := range ids {
		delete(m.Docs, id)
	}
	return nil
}

// Query delegates to QueryFunc, or returns an empty response.
func (m *MockCollection) Query(ctx context.Context, embedding []float32, maxResults int) (*store.QueryResponse, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, embedding, maxResults)
	}
	return &store.QueryResponse{}, nil
}

// Count returns the number of stored documents, or delegates to CountFunc.
func (m *MockCollection) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return len(m.Docs), nil
}
