package chroma

import (
	"context"
	"fmt"

	"github.com/poiesic/vaultsync/core"
	"github.com/poiesic/vaultsync/store"
)

// collection is a handle to one server-side collection, addressed by the
// UUID the server assigned at creation.
type collection struct {
	client *Client
	id     string
	name   string
}

var _ store.Collection = (*collection)(nil)

// Name returns the collection name.
func (c *collection) Name() string {
	return c.name
}

func (c *collection) path(op string) string {
	return "/collections/" + c.id + "/" + op
}

// Upsert inserts or replaces documents keyed by their ids.
func (c *collection) Upsert(ctx context.Context, docs ...core.Document) error {
	if len(docs) == 0 {
		return nil
	}

	req := struct {
		Ids       []string        `json:"ids"`
		Documents []string        `json:"documents"`
		Metadatas []core.Metadata `json:"metadatas"`
	}{
		Ids:       make([]string, len(docs)),
		Documents: make([]string, len(docs)),
		Metadatas: make([]core.Metadata, len(docs)),
	}
	for i := range docs {
		if err := core.ValidateDocument(&docs[i]); err != nil {
			return err
		}
		req.Ids[i] = docs[i].Id
		req.Documents[i] = docs[i].Content
		req.Metadatas[i] = docs[i].Metadata
	}

	if err := c.client.post(ctx, c.path("upsert"), req, nil); err != nil {
		return fmt.Errorf("upsert %d documents into %q: %w", len(docs), c.name, err)
	}
	return nil
}

// Ids returns the identifiers of every document in the collection.
func (c *collection) Ids(ctx context.Context) ([]string, error) {
	req := struct {
		Include []string `json:"include"`
	}{Include: []string{}}

	var resp struct {
		Ids []string `json:"ids"`
	}
	if err := c.client.post(ctx, c.path("get"), req, &resp); err != nil {
		return nil, fmt.Errorf("fetch ids from %q: %w", c.name, err)
	}
	return resp.Ids, nil
}

// Delete removes the documents with the given ids.
func (c *collection) Delete(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	req := struct {
		Ids []string `json:"ids"`
	}{Ids: ids}

	if err := c.client.post(ctx, c.path("delete"), req, nil); err != nil {
		return fmt.Errorf("delete %d documents from %q: %w", len(ids), c.name, err)
	}
	return nil
}

// Query runs a similarity search with a precomputed embedding.
// The server nests results one level per query embedding; this client sends
// a single embedding and flattens the outer level away.
func (c *collection) Query(ctx context.Context, embedding []float32, maxResults int) (*store.QueryResponse, error) {
	req := struct {
		QueryEmbeddings [][]float32 `json:"query_embeddings"`
		NResults        int         `json:"n_results"`
		Include         []string    `json:"include"`
	}{
		QueryEmbeddings: [][]float32{embedding},
		NResults:        maxResults,
		Include:         []string{"documents", "metadatas", "distances"},
	}

	var resp struct {
		Ids       [][]string         `json:"ids"`
		Documents [][]string         `json:"documents"`
		Metadatas [][]map[string]any `json:"metadatas"`
		Distances [][]float64        `json:"distances"`
	}
	if err := c.client.post(ctx, c.path("query"), req, &resp); err != nil {
		return nil, fmt.Errorf("query %q: %w", c.name, err)
	}

	out := &store.QueryResponse{}
	if len(resp.Ids) > 0 {
		out.Ids = resp.Ids[0]
	}
	if len(resp.Documents) > 0 {
		out.Documents = resp.Documents[0]
	}
	if len(resp.Metadatas) > 0 {
		out.Metadatas = resp.Metadatas[0]
	}
	if len(resp.Distances) > 0 {
		out.Distances = resp.Distances[0]
	}
	return out, nil
}

// Count returns the number of documents in the collection.
func (c *collection) Count(ctx context.Context) (int, error) {
	var count int
	if err := c.client.get(ctx, c.path("count"), &count); err != nil {
		return 0, fmt.Errorf("count %q: %w", c.name, err)
	}
	return count, nil
}
