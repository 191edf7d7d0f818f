package protocol

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	aimock "github.com/poiesic/vaultsync/ai/mock"
	"github.com/poiesic/vaultsync/store"
	storemock "github.com/poiesic/vaultsync/store/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, mockStore *storemock.MockStore) *Handler {
	t.Helper()
	h, err := NewHandler(aimock.NewMockEmbedder(), WithConnector(
		func(ctx context.Context, host string, port int) store.DocumentStore {
			return mockStore
		},
	))
	require.NoError(t, err)
	return h
}

// handle runs one exchange and decodes the single response object.
func handle(t *testing.T, h *Handler, input string) map[string]any {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, h.Handle(context.Background(), strings.NewReader(input), &out))

	dec := json.NewDecoder(&out)
	var resp map[string]any
	require.NoError(t, dec.Decode(&resp), "stdout must hold exactly one JSON object")
	require.False(t, dec.More(), "stdout must hold exactly one JSON object")
	return resp
}

func TestHandler_Query(t *testing.T) {
	mockStore := storemock.NewMockStore()
	mockStore.Col.QueryFunc = func(ctx context.Context, embedding []float32, maxResults int) (*store.QueryResponse, error) {
		return &store.QueryResponse{
			Ids:       []string{"fruit/pineapple", "fruit/oranges"},
			Documents: []string{"about pineapple", "about oranges"},
			Metadatas: []map[string]any{{"folder": "fruit"}, {"folder": "fruit"}},
			Distances: []float64{0.2, 0.4},
		}, nil
	}
	h := newTestHandler(t, mockStore)

	resp := handle(t, h, `{
		"action": "query",
		"host": "localhost",
		"port": 8000,
		"collection_name": "notes",
		"query_text": "hawaii",
		"n_results": 2
	}`)

	assert.Equal(t, true, resp["success"])
	results := resp["results"].([]any)
	require.Len(t, results, 2)
	first := results[0].(map[string]any)
	assert.Equal(t, "fruit/pineapple", first["id"])
	assert.GreaterOrEqual(t, first["distance"].(float64), 0.0)
}

func TestHandler_Query_NoMatches(t *testing.T) {
	h := newTestHandler(t, storemock.NewMockStore())

	resp := handle(t, h, `{
		"action": "query",
		"host": "localhost",
		"port": 8000,
		"collection_name": "notes",
		"query_text": "nothing here",
		"n_results": 5
	}`)

	assert.Equal(t, true, resp["success"])
	results, ok := resp["results"].([]any)
	require.True(t, ok, "results must be a JSON array even when empty")
	assert.Empty(t, results)
}

func TestHandler_QueryEmbedding(t *testing.T) {
	mockStore := storemock.NewMockStore()
	var gotEmbedding []float32
	mockStore.Col.QueryFunc = func(ctx context.Context, embedding []float32, maxResults int) (*store.QueryResponse, error) {
		gotEmbedding = embedding
		return &store.QueryResponse{Ids: []string{"a"}, Distances: []float64{0.1}}, nil
	}
	h := newTestHandler(t, mockStore)

	resp := handle(t, h, `{
		"action": "query_embedding",
		"host": "localhost",
		"port": 8000,
		"collection_name": "notes",
		"query_embedding": [0.25, 0.5, 0.75],
		"n_results": 1
	}`)

	assert.Equal(t, true, resp["success"])
	assert.Equal(t, []float32{0.25, 0.5, 0.75}, gotEmbedding)
}

func TestHandler_Embed(t *testing.T) {
	h := newTestHandler(t, storemock.NewMockStore())

	resp := handle(t, h, `{"action": "embed", "text": "vectorize me"}`)

	assert.Equal(t, true, resp["success"])
	embeddings := resp["embeddings"].([]any)
	require.Len(t, embeddings, 1)
	assert.NotEmpty(t, embeddings[0].([]any))
}

func TestHandler_Count(t *testing.T) {
	mockStore := storemock.NewMockStore()
	mockStore.Col.CountFunc = func(ctx context.Context) (int, error) {
		return 42, nil
	}
	h := newTestHandler(t, mockStore)

	resp := handle(t, h, `{
		"action": "count",
		"host": "localhost",
		"port": 8000,
		"collection_name": "notes"
	}`)

	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(42), resp["total_documents"])
}

func TestHandler_MalformedInput(t *testing.T) {
	h := newTestHandler(t, storemock.NewMockStore())

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"not json", "not json", "invalid JSON input"},
		{"empty input", "", "no input provided"},
		{"whitespace only", "   \n  ", "no input provided"},
		{"missing action", `{"host": "localhost"}`, "missing required field: action"},
		{"unknown action", `{"action": "explode"}`, "unsupported action: explode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := handle(t, h, tt.input)
			assert.Equal(t, false, resp["success"])
			assert.Contains(t, resp["error"].(string), tt.wantErr)
		})
	}
}

func TestHandler_MissingFields(t *testing.T) {
	h := newTestHandler(t, storemock.NewMockStore())

	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{"query without text", `{"action":"query","host":"h","port":8000,"collection_name":"notes","n_results":2}`, "query_text"},
		{"query without host", `{"action":"query","collection_name":"notes","query_text":"q","n_results":2}`, "host"},
		{"query without n_results", `{"action":"query","host":"h","port":8000,"collection_name":"notes","query_text":"q"}`, "n_results"},
		{"embedding without vector", `{"action":"query_embedding","host":"h","port":8000,"collection_name":"notes","n_results":2}`, "query_embedding"},
		{"embed without text", `{"action":"embed"}`, "text"},
		{"count without collection", `{"action":"count","host":"h","port":8000}`, "collection_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := handle(t, h, tt.input)
			assert.Equal(t, false, resp["success"])
			assert.Contains(t, resp["error"].(string), "missing required field: "+tt.wantField)
		})
	}
}

func TestHandler_StoreUnreachable(t *testing.T) {
	mockStore := storemock.NewMockStore()
	mockStore.HeartbeatFunc = func(ctx context.Context) error {
		return store.ErrUnreachable
	}
	h := newTestHandler(t, mockStore)

	resp := handle(t, h, `{
		"action": "count",
		"host": "localhost",
		"port": 8000,
		"collection_name": "notes"
	}`)

	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"].(string), "failed to connect")
}
