package reader

import "errors"

// Common errors returned by the reader package.
var (
	// ErrEmptyFile is returned when a file has no header row.
	ErrEmptyFile = errors.New("file has no header row")
)
