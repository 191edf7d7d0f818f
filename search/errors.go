package search

import "errors"

var (
	// ErrCollectionRequired is returned when a target collection is not provided.
	ErrCollectionRequired = errors.New("collection required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrInvalidMaxResults is returned when the requested result count is not positive.
	ErrInvalidMaxResults = errors.New("max results must be greater than 0")
)
