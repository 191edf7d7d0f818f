package vault

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscover_Folders(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "notes", "a.md"), "a")
	writeFile(t, filepath.Join(root, "notes", "sub", "b.md"), "b")
	writeFile(t, filepath.Join(root, "projects", "c.md"), "c")
	writeFile(t, filepath.Join(root, "archive", "d.md"), "d")
	writeFile(t, filepath.Join(root, "notes", "image.png"), "not markdown")

	files, err := Discover(root, []string{"notes", "projects"})
	require.NoError(t, err)
	require.Len(t, files, 3)

	// archive/d.md excluded, png excluded
	for _, f := range files {
		assert.Equal(t, ".md", filepath.Ext(f))
		assert.NotContains(t, f, "archive")
	}
}

func TestDiscover_MissingFolderSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "notes", "a.md"), "a")

	files, err := Discover(root, []string{"notes", "does-not-exist"})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestDiscover_WholeRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), "a")
	writeFile(t, filepath.Join(root, "deep", "nested", "b.md"), "b")

	files, err := Discover(root, nil)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestDiscover_SingleFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "note.md")
	writeFile(t, path, "content")

	files, err := Discover(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "gone"), nil)
	assert.ErrorIs(t, err, ErrNoSuchPath)
}

func TestDiscover_DeterministicOrder(t *testing.T) {
	root := t.TempDir()
	names := []string{"zebra.md", "apple.md", "mango.md", "sub/inner.md"}
	for _, name := range names {
		writeFile(t, filepath.Join(root, filepath.FromSlash(name)), "x")
	}

	first, err := Discover(root, nil)
	require.NoError(t, err)
	second, err := Discover(root, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, sort.StringsAreSorted(first), "walk order should be lexical")
}
