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


// Command fetcher serves one store request over stdin/stdout. A caller
// writes a single JSON request to stdin and reads a single JSON response
// from stdout; everything else goes to stderr.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/poiesic/vaultsync/ai"
	"github.com/poiesic/vaultsync/ai/openai"
	"github.com/poiesic/vaultsync/protocol"
)

func init() {
	// Stdout carries the response object and nothing else.
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	var opts []ai.ConfigOption
	if host := os.Getenv("VAULTSYNC_EMBEDDING_HOST"); host != "" {
		opts = append(opts, ai.WithEmbeddingHost(host))
	}
	if model := os.Getenv("VAULTSYNC_EMBEDDING_MODEL"); model != "" {
		opts = append(opts, ai.WithEmbeddingModel(model))
	}
	aiConfig := ai.NewConfig(opts...)

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		fatal("failed to create embedder: " + err.Error())
	}

	handler, err := protocol.NewHandler(embedder)
	if err != nil {
		fatal("failed to create handler: " + err.Error())
	}

	if err := handler.Handle(context.Background(), os.Stdin, os.Stdout); err != nil {
		slog.Error("failed to write response", "err", err)
		os.Exit(1)
	}
}

// fatal reports a startup failure on the protocol channel and exits nonzero.
func fatal(message string) {
	slog.Error(message)
	if err := protocol.WriteError(os.Stdout, message); err != nil {
		slog.Error("failed to write error response", "err", err)
	}
	os.Exit(1)
}
