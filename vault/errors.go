package vault

import "errors"

var (
	// ErrPathOutsideRoot is returned when a document id is requested for a
	// file that does not live under the declared vault root.
	ErrPathOutsideRoot = errors.New("path is outside the vault root")

	// ErrNoSuchPath is returned when a discovery target does not exist.
	ErrNoSuchPath = errors.New("path does not exist")
)
