package ingestion

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/vaultsync/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeNote(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func makeDocs(n int) []core.Document {
	docs := make([]core.Document, n)
	for i := range docs {
		docs[i] = core.Document{
			Id:      fmt.Sprintf("notes/doc-%03d", i),
			Content: fmt.Sprintf("content %d", i),
		}
	}
	return docs
}

func TestBatchDocuments_CeilBatchCount(t *testing.T) {
	for _, capacity := range []int{1, 2, 7, 50} {
		for _, count := range []int{0, 1, capacity - 1, capacity, capacity + 1, 3*capacity + 2} {
			if count < 0 {
				continue
			}
			name := fmt.Sprintf("capacity %d count %d", capacity, count)
			t.Run(name, func(t *testing.T) {
				batches := batchDocuments(makeDocs(count), capacity)

				wantBatches := (count + capacity - 1) / capacity
				require.Len(t, batches, wantBatches)

				total := 0
				for i, batch := range batches {
					require.NotEmpty(t, batch, "no empty batch may be produced")
					if i < len(batches)-1 {
						assert.Len(t, batch, capacity, "only the last batch may be partial")
					} else {
						assert.LessOrEqual(t, len(batch), capacity)
					}
					total += len(batch)
				}
				assert.Equal(t, count, total, "every document appears in exactly one batch")
			})
		}
	}
}

func TestBatchDocuments_PreservesOrder(t *testing.T) {
	docs := makeDocs(7)
	batches := batchDocuments(docs, 3)
	require.Len(t, batches, 3)

	i := 0
	for _, batch := range batches {
		for _, doc := range batch {
			assert.Equal(t, docs[i].Id, doc.Id)
			i++
		}
	}
}

func TestClassifyFiles(t *testing.T) {
	root := t.TempDir()
	paths := []string{
		writeNote(t, root, "notes/good.md", "real content"),
		writeNote(t, root, "notes/empty.md", ""),
		writeNote(t, root, "notes/stub.md", "#TODO"),
		writeNote(t, root, "notes/more.md", "more content"),
	}
	missing := filepath.Join(root, "notes", "gone.md")
	paths = append(paths, missing)

	docs, stats := classifyFiles(paths, root, discardLogger())

	assert.Equal(t, 5, stats.TotalFiles)
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 1, stats.Empty)
	assert.Equal(t, 1, stats.PlaceholderOnly)
	assert.Equal(t, 1, stats.EncodingErrors)
	assert.Equal(t, stats.TotalFiles, stats.Processed+stats.Excluded())

	require.Len(t, docs, 2)
	assert.Equal(t, "notes/good", docs[0].Id)
	assert.Equal(t, "notes/more", docs[1].Id)
}
