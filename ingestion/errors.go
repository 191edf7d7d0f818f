package ingestion

import "errors"

var (
	// ErrCollectionRequired is returned when a target collection is not provided.
	ErrCollectionRequired = errors.New("collection required")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("batch size must be greater than 0")
)
