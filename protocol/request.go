package protocol

import "github.com/poiesic/vaultsync/core"

// Supported protocol actions.
const (
	// ActionQuery runs a similarity search from raw query text.
	ActionQuery = "query"
	// ActionQueryEmbedding runs a similarity search from a precomputed vector.
	ActionQueryEmbedding = "query_embedding"
	// ActionEmbed vectorizes raw text without touching the store.
	ActionEmbed = "embed"
	// ActionCount reports the number of documents in a collection.
	ActionCount = "count"
)

// Request is the single JSON object read from standard input.
// Which fields are required depends on the action.
type Request struct {
	Action         string    `json:"action"`
	Host           string    `json:"host"`
	Port           int       `json:"port"`
	CollectionName string    `json:"collection_name"`
	QueryText      string    `json:"query_text"`
	QueryEmbedding []float32 `json:"query_embedding"`
	NResults       int       `json:"n_results"`
	Text           string    `json:"text"`
}

// queryResponse is the success envelope for query actions. Results is
// always present, empty when there are no matches.
type queryResponse struct {
	Success bool               `json:"success"`
	Results []core.QueryResult `json:"results"`
}

// embedResponse is the success envelope for the embed action.
type embedResponse struct {
	Success    bool        `json:"success"`
	Embeddings [][]float32 `json:"embeddings"`
}

// countResponse is the success envelope for the count action.
type countResponse struct {
	Success        bool `json:"success"`
	TotalDocuments int  `json:"total_documents"`
}

// errorResponse is the failure envelope for every action.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
