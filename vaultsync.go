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


// Package vaultsync synchronizes a vault of markdown notes with an external
// vector-database collection and answers similarity queries against it.
//
// The Client façade wires the document store, the target collection and the
// embedder together; the heavy lifting lives in the ingestion, search and
// protocol packages, all of which the Client can hand out pre-wired.
package vaultsync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/vaultsync/ai"
	"github.com/poiesic/vaultsync/ai/openai"
	"github.com/poiesic/vaultsync/ingestion"
	"github.com/poiesic/vaultsync/search"
	"github.com/poiesic/vaultsync/store"
	"github.com/poiesic/vaultsync/store/chroma"
)

// DefaultCollection is the collection name used when none is configured.
const DefaultCollection = "notes"

// Client bundles a live store connection, the target collection and the
// embedder for one vaultsync session.
type Client struct {
	store      store.DocumentStore
	collection store.Collection
	embedder   ai.Embedder
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

type clientOptions struct {
	aiConfig    *ai.Config
	embedder    ai.Embedder
	callTimeout time.Duration
	logger      *slog.Logger
}

// WithAIConfig sets the embedding service configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(cfg *ai.Config) ClientOption {
	return func(o *clientOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithEmbedder injects a pre-built embedder, bypassing the AI config.
func WithEmbedder(embedder ai.Embedder) ClientOption {
	return func(o *clientOptions) {
		o.embedder = embedder
	}
}

// WithCallTimeout sets the per-call timeout for store requests.
func WithCallTimeout(timeout time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.callTimeout = timeout
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ClientOption {
	return func(o *clientOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Connect opens a session against the document store at host:port and the
// named collection, creating the collection if needed. The store's liveness
// check must pass before Connect succeeds; a store that cannot be reached
// is a fatal error, not something to ingest against.
func Connect(ctx context.Context, host string, port int, collectionName string, opts ...ClientOption) (*Client, error) {
	options := &clientOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if collectionName == "" {
		collectionName = DefaultCollection
	}

	var storeOpts []chroma.Option
	if options.callTimeout > 0 {
		storeOpts = append(storeOpts, chroma.WithTimeout(options.callTimeout))
	}
	storeOpts = append(storeOpts, chroma.WithLogger(options.logger))

	client := chroma.New(host, port, storeOpts...)
	if err := client.Heartbeat(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to document store at %s:%d: %w", host, port, err)
	}

	collection, err := client.Collection(ctx, collectionName)
	if err != nil {
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create embedder: %w", err)
		}
	}

	options.logger.Info("connected to document store",
		"host", host, "port", port, "collection", collectionName)

	return &Client{
		store:      client,
		collection: collection,
		embedder:   embedder,
		logger:     options.logger,
	}, nil
}

// Collection returns the session's target collection.
func (c *Client) Collection() store.Collection {
	return c.collection
}

// NewPipeline creates an ingestion pipeline targeting the session collection.
func (c *Client) NewPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	opts = append([]ingestion.Option{ingestion.WithLogger(c.logger)}, opts...)
	return ingestion.NewPipeline(c.collection, opts...)
}

// NewSearcher creates a searcher over the session collection.
func (c *Client) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	opts = append([]search.Option{search.WithLogger(c.logger)}, opts...)
	return search.NewSearcher(c.collection, c.embedder, opts...)
}

// Count returns the number of documents in the session collection.
func (c *Client) Count(ctx context.Context) (int, error) {
	return c.collection.Count(ctx)
}
