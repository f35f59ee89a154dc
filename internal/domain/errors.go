package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrImportFailed    = errors.New("import failed")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyStash      = errors.New("no stashed draft")
)
