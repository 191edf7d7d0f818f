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


package protocol

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/poiesic/vaultsync/ai"
	"github.com/poiesic/vaultsync/search"
	"github.com/poiesic/vaultsync/store"
	"github.com/poiesic/vaultsync/store/chroma"
)

// Connector opens a connection to the document store named in a request.
type Connector func(ctx context.Context, host string, port int) store.DocumentStore

// Handler serves one protocol exchange: a single JSON request read from an
// input stream, a single JSON response written to an output stream. All
// diagnostics go to the logger, never to the output stream.
type Handler struct {
	embedder ai.Embedder
	connect  Connector
	logger   *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler) error

// WithConnector overrides how the handler reaches the document store.
// Default connects to ChromaDB over HTTP.
func WithConnector(connect Connector) Option {
	return func(h *Handler) error {
		if connect == nil {
			return ErrConnectorRequired
		}
		h.connect = connect
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) error {
		if logger == nil {
			logger = slog.Default()
		}
		h.logger = logger
		return nil
	}
}

// NewHandler creates a protocol handler. The embedder vectorizes query text
// for the query and embed actions.
func NewHandler(embedder ai.Embedder, opts ...Option) (*Handler, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	h := &Handler{
		embedder: embedder,
		connect: func(ctx context.Context, host string, port int) store.DocumentStore {
			return chroma.New(host, port)
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Handle reads one request from r and writes exactly one response object to
// w. Every failure, including malformed input, becomes a structured error
// response; the returned error is non-nil only when writing to w fails.
func (h *Handler) Handle(ctx context.Context, r io.Reader, w io.Writer) error {
	resp := h.dispatch(ctx, r)
	return json.NewEncoder(w).Encode(resp)
}

// WriteError emits a single error response to w. Callers that fail before a
// Handler exists use it to keep the one-object contract on their output.
func WriteError(w io.Writer, message string) error {
	return json.NewEncoder(w).Encode(errorResponse{Error: message})
}

func (h *Handler) dispatch(ctx context.Context, r io.Reader) any {
	req, err := decodeRequest(r)
	if err != nil {
		h.logger.Error("rejecting request", "err", err)
		return errorResponse{Error: err.Error()}
	}

	h.logger.Info("handling request", "action", req.Action)

	var resp any
	switch req.Action {
	case ActionQuery, ActionQueryEmbedding:
		resp, err = h.query(ctx, req)
	case ActionEmbed:
		resp, err = h.embed(ctx, req)
	case ActionCount:
		resp, err = h.count(ctx, req)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedAction, req.Action)
	}

	if err != nil {
		h.logger.Error("request failed", "action", req.Action, "err", err)
		return errorResponse{Error: err.Error()}
	}
	return resp
}

// decodeRequest reads and validates the single request object.
func decodeRequest(r io.Reader) (*Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrNoInput
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if req.Action == "" {
		return nil, fmt.Errorf("%w: action", ErrMissingField)
	}
	return &req, nil
}

func (h *Handler) query(ctx context.Context, req *Request) (any, error) {
	if err := requireStoreFields(req); err != nil {
		return nil, err
	}
	if req.NResults < 1 {
		return nil, fmt.Errorf("%w: n_results", ErrMissingField)
	}
	if req.Action == ActionQuery && req.QueryText == "" {
		return nil, fmt.Errorf("%w: query_text", ErrMissingField)
	}
	if req.Action == ActionQueryEmbedding && len(req.QueryEmbedding) == 0 {
		return nil, fmt.Errorf("%w: query_embedding", ErrMissingField)
	}

	col, err := h.openCollection(ctx, req)
	if err != nil {
		return nil, err
	}

	searcher, err := search.NewSearcher(col, h.embedder, search.WithLogger(h.logger))
	if err != nil {
		return nil, err
	}

	if req.Action == ActionQuery {
		found, err := searcher.Query(ctx, req.QueryText, req.NResults)
		if err != nil {
			return nil, fmt.Errorf("query failed: %w", err)
		}
		return queryResponse{Success: true, Results: found}, nil
	}

	found, err := searcher.QueryVector(ctx, req.QueryEmbedding, req.NResults)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return queryResponse{Success: true, Results: found}, nil
}

func (h *Handler) embed(ctx context.Context, req *Request) (any, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("%w: text", ErrMissingField)
	}

	embedding, err := h.embedder.EmbedText(ctx, req.Text)
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}
	return embedResponse{Success: true, Embeddings: [][]float32{embedding}}, nil
}

func (h *Handler) count(ctx context.Context, req *Request) (any, error) {
	if err := requireStoreFields(req); err != nil {
		return nil, err
	}

	col, err := h.openCollection(ctx, req)
	if err != nil {
		return nil, err
	}

	total, err := col.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count failed: %w", err)
	}
	return countResponse{Success: true, TotalDocuments: total}, nil
}

// openCollection connects to the store named in the request, verifies
// liveness, and opens the target collection.
func (h *Handler) openCollection(ctx context.Context, req *Request) (store.Collection, error) {
	client := h.connect(ctx, req.Host, req.Port)
	if err := client.Heartbeat(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to document store at %s:%d: %w", req.Host, req.Port, err)
	}
	return client.Collection(ctx, req.CollectionName)
}

// requireStoreFields validates the connection fields shared by every
// store-touching action.
func requireStoreFields(req *Request) error {
	if req.Host == "" {
		return fmt.Errorf("%w: host", ErrMissingField)
	}
	if req.Port == 0 {
		return fmt.Errorf("%w: port", ErrMissingField)
	}
	if req.CollectionName == "" {
		return fmt.Errorf("%w: collection_name", ErrMissingField)
	}
	return nil
}
