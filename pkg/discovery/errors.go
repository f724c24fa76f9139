package discovery

import "errors"

// Common errors returned by the discovery package.
var (
	// ErrNoInputDirs is returned when none of the configured input
	// directories could be scanned.
	ErrNoInputDirs = errors.New("no input directories could be scanned")
)
