package mock

import (
	"context"

	"github.com/poiesic/vaultsync/store"
)

// MockStore is a test double for store.DocumentStore.
type MockStore struct {
	// HeartbeatFunc is called by Heartbeat if set.
	HeartbeatFunc func(ctx context.Context) error

	// CollectionFunc is called by Collection if set.
	CollectionFunc func(ctx context.Context, name string) (store.Collection, error)

	// Col is returned by the default Collection path.
	Col *MockCollection
}

var _ store.DocumentStore = (*MockStore)(nil)

// NewMockStore creates a mock store wrapping a fresh MockCollection.
func NewMockStore() *MockStore {
	return &MockStore{Col: NewMockCollection()}
}

// Heartbeat delegates to HeartbeatFunc, or reports the store as alive.
func (m *MockStore) Heartbeat(ctx context.Context) error {
	if m.HeartbeatFunc != nil {
		return m.HeartbeatFunc(ctx)
	}
	return nil
}

// Collection delegates to CollectionFunc, or returns the wrapped collection.
func (m *MockStore) Collection(ctx context.Context, name string) (store.Collection, error) {
	if m.CollectionFunc != nil {
		return m.CollectionFunc(ctx, name)
	}
	m.Col.CollectionName = name
	return m.Col, nil
}
