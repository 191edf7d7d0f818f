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


package chroma

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/vaultsync/store"
)

const (
	apiPrefix      = "/api/v1"
	defaultTimeout = 30 * time.Second

	// maxErrorBody caps how much of an error response body is read back
	// into error messages.
	maxErrorBody = 8 << 10
)

// Client talks to a ChromaDB server over its v1 HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

var _ store.DocumentStore = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-call HTTP timeout.
// Default is 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger.With("component", "chroma-client")
	}
}

// New creates a client for the ChromaDB server at host:port.
//
// Returns store.DocumentStore interface to enforce abstraction.
func New(host string, port int, opts ...Option) store.DocumentStore {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    fmt.Sprintf("http://%s:%d%s", host, port, apiPrefix),
		logger:     slog.Default().With("component", "chroma-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Heartbeat checks that the server is reachable and alive.
func (c *Client) Heartbeat(ctx context.Context) error {
	var beat map[string]any
	if err := c.get(ctx, "/heartbeat", &beat); err != nil {
		return fmt.Errorf("%w: %w", store.ErrUnreachable, err)
	}
	c.logger.Debug("heartbeat ok")
	return nil
}

// Collection returns a handle to the named collection, creating it on the
// server if it does not exist.
func (c *Client) Collection(ctx context.Context, name string) (store.Collection, error) {
	if name == "" {
		return nil, store.ErrEmptyCollectionName
	}

	req := struct {
		Name        string `json:"name"`
		GetOrCreate bool   `json:"get_or_create"`
	}{Name: name, GetOrCreate: true}

	var resp struct {
		Id   string `json:"id"`
		Name string `json:"name"`
	}
	if err := c.post(ctx, "/collections", req, &resp); err != nil {
		return nil, fmt.Errorf("get-or-create collection %q: %w", name, err)
	}

	c.logger.Debug("collection ready", "name", resp.Name, "id", resp.Id)
	return &collection{client: c, id: resp.Id, name: resp.Name}, nil
}

// get issues a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

// post issues a POST request with a JSON body and decodes the JSON response
// into out. A nil out discards the response body.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: status %s: %s", store.ErrRequestFailed, resp.Status, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
