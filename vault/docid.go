package vault

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/poiesic/vaultsync/core"
)

// DocumentId derives the stable identifier for a vault file: its path
// relative to the vault root, with separators normalized to "/" and the
// markdown extension stripped. The id is deterministic and unique per file
// within a root, which makes it a safe idempotent upsert key.
func DocumentId(path, root string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s not under %s", ErrPathOutsideRoot, path, root)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s not under %s", ErrPathOutsideRoot, path, root)
	}

	id := filepath.ToSlash(rel)
	return strings.TrimSuffix(id, markdownExt), nil
}

// NewDocument builds a Document for a successfully read vault file,
// populating the path-derived id and the origin metadata.
func NewDocument(path, root, content string) (*core.Document, error) {
	id, err := DocumentId(path, root)
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not under %s", ErrPathOutsideRoot, path, root)
	}

	return &core.Document{
		Id:      id,
		Content: content,
		Metadata: core.Metadata{
			FilePath:     path,
			RelativePath: rel,
			Folder:       filepath.Base(filepath.Dir(path)),
			Filename:     filepath.Base(path),
		},
	}, nil
}
