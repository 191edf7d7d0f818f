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


package ingestion

import (
	"context"
	"io"
	"log/slog"

	"github.com/poiesic/vaultsync/core"
	"github.com/poiesic/vaultsync/store"
	"github.com/poiesic/vaultsync/vault"
)

// DefaultBatchSize is the number of documents submitted per upsert call.
const DefaultBatchSize = 50

// Pipeline ingests vault files into one external document collection.
// It is strictly sequential; a Pipeline is not safe for concurrent use.
type Pipeline struct {
	collection store.Collection
	batchSize  int
	progress   io.Writer
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithBatchSize sets the maximum number of documents per upsert batch.
// Default is DefaultBatchSize.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return ErrInvalidBatchSize
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithProgressWriter sets where per-batch progress lines are written.
// Default is io.Discard. Never pass the writer used for protocol output.
func WithProgressWriter(w io.Writer) Option {
	return func(p *Pipeline) error {
		if w == nil {
			w = io.Discard
		}
		p.progress = w
		return nil
	}
}

// NewPipeline creates an ingestion pipeline targeting the given collection.
func NewPipeline(collection store.Collection, opts ...Option) (*Pipeline, error) {
	if collection == nil {
		return nil, ErrCollectionRequired
	}

	p := &Pipeline{
		collection: collection,
		batchSize:  DefaultBatchSize,
		progress:   io.Discard,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Index discovers markdown files under root (restricted to the named
// sub-folders when any are given), classifies them, and upserts the
// indexable documents in batches. It returns the combined processing and
// upload report; per-batch upload failures are recorded in the report, not
// returned as an error.
func (p *Pipeline) Index(ctx context.Context, root string, folders ...string) (*Report, error) {
	files, err := vault.Discover(root, folders)
	if err != nil {
		return nil, err
	}
	return p.indexFiles(ctx, files, root)
}

// IndexPath indexes a single file or sub-tree that lives under root.
// Document ids stay relative to root, so re-indexing one file overwrites
// the same record a full-vault run would write.
func (p *Pipeline) IndexPath(ctx context.Context, root, path string) (*Report, error) {
	if _, err := vault.DocumentId(path, root); err != nil {
		return nil, err
	}
	files, err := vault.Discover(path, nil)
	if err != nil {
		return nil, err
	}
	return p.indexFiles(ctx, files, root)
}

func (p *Pipeline) indexFiles(ctx context.Context, files []string, root string) (*Report, error) {
	p.logger.Info("found markdown files", "count", len(files))

	docs, stats := classifyFiles(files, root, p.logger)
	batches := batchDocuments(docs, p.batchSize)
	stats.BatchesCreated = len(batches)

	p.logger.Info("created batches",
		"batches", len(batches),
		"documents", stats.Processed,
		"batch_size", p.batchSize)

	upload := p.uploadBatches(ctx, batches)
	return &Report{Collection: p.collection.Name(), Processing: stats, Upload: upload}, nil
}

// uploadBatches upserts each batch with a single blocking call. A failed
// batch is logged and counted; the run continues with the next batch.
func (p *Pipeline) uploadBatches(ctx context.Context, batches [][]core.Document) core.UploadStats {
	stats := core.UploadStats{TotalBatches: len(batches)}

	tracker := NewProgressTracker(p.progress, len(batches))
	tracker.Start()
	for i, batch := range batches {
		tracker.Batch(i+1, len(batch))

		if err := p.collection.Upsert(ctx, batch...); err != nil {
			stats.FailedUploads++
			p.logger.Error("error upserting batch", "batch", i+1, "size", len(batch), "err", err)
			continue
		}
		stats.SuccessfulUploads++
		stats.TotalDocuments += len(batch)
	}
	tracker.Finish(stats.TotalDocuments)

	return stats
}

// Clear removes every document from the collection. The delete is issued in
// chunks of the configured batch size to bound request size. Clearing an
// already-empty collection is a no-op.
func (p *Pipeline) Clear(ctx context.Context) (int, error) {
	ids, err := p.collection.Ids(ctx)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		p.logger.Info("collection already empty", "collection", p.collection.Name())
		return 0, nil
	}

	deleted := 0
	for start := 0; start < len(ids); start += p.batchSize {
		end := start + p.batchSize
		if end > len(ids) {
			end = len(ids)
		}
		if err := p.collection.Delete(ctx, ids[start:end]...); err != nil {
			return deleted, err
		}
		deleted += end - start
	}

	p.logger.Info("cleared collection", "collection", p.collection.Name(), "deleted", deleted)
	return deleted, nil
}
