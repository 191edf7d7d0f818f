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
	"log/slog"

	"github.com/poiesic/vaultsync/core"
	"github.com/poiesic/vaultsync/vault"
)

// classifyFiles reads every discovered file in order, classifies it, and
// builds a Document for each indexable one. Files that are empty,
// placeholder-only or unreadable are counted and excluded; no failure
// stops the run.
func classifyFiles(files []string, root string, logger *slog.Logger) ([]core.Document, core.ProcessingStats) {
	stats := core.ProcessingStats{TotalFiles: len(files)}
	docs := make([]core.Document, 0, len(files))

	for _, path := range files {
		outcome := vault.ReadFile(path)
		switch outcome.Status {
		case vault.StatusEmpty:
			stats.Empty++
		case vault.StatusPlaceholderOnly:
			stats.PlaceholderOnly++
		case vault.StatusEncodingError:
			stats.EncodingErrors++
			logger.Warn("skipping unreadable file", "path", path, "err", outcome.Err)
		case vault.StatusSuccess:
			doc, err := vault.NewDocument(path, root, outcome.Content)
			if err != nil {
				stats.EncodingErrors++
				logger.Error("skipping file outside vault root", "path", path, "err", err)
				continue
			}
			docs = append(docs, *doc)
			stats.Processed++
		}
	}

	return docs, stats
}

// batchDocuments partitions documents into contiguous batches of at most
// size documents, preserving order. The final partial batch is emitted only
// if non-empty; no empty batch is ever produced.
func batchDocuments(docs []core.Document, size int) [][]core.Document {
	if len(docs) == 0 {
		return nil
	}

	batches := make([][]core.Document, 0, (len(docs)+size-1)/size)
	for start := 0; start < len(docs); start += size {
		end := start + size
		if end > len(docs) {
			end = len(docs)
		}
		batches = append(batches, docs[start:end])
	}
	return batches
}
