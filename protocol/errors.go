package protocol

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrConnectorRequired is returned when a nil connector is configured.
	ErrConnectorRequired = errors.New("connector required")

	// ErrNoInput indicates the input stream held no request.
	ErrNoInput = errors.New("no input provided")

	// ErrInvalidInput indicates the input was not a valid JSON object.
	ErrInvalidInput = errors.New("invalid JSON input")

	// ErrMissingField indicates a required request field was absent.
	ErrMissingField = errors.New("missing required field")

	// ErrUnsupportedAction indicates an action this handler does not know.
	ErrUnsupportedAction = errors.New("unsupported action")
)
