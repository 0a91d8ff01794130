package core

import "errors"

// Common errors.
var (
	// ErrEmptyTitle rejects a create or update whose title is blank.
	ErrEmptyTitle = errors.New("note title cannot be empty")
	// ErrInvalidQuadrant rejects a quadrant tag outside Q1..Q4.
	ErrInvalidQuadrant = errors.New("invalid quadrant")
	// ErrInvalidText rejects a create or update carrying text that is not
	// valid UTF-8, which snapshots could not store unchanged.
	ErrInvalidText = errors.New("note text is not valid UTF-8")
	// ErrNotFound reports an operation on an id the collection does not hold.
	// It is benign: nothing was changed.
	ErrNotFound = errors.New("note not found")
	// ErrKeyNotFound is returned by Storage.Get for a missing key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrReadOnly is returned by storage opened in read-only mode.
	ErrReadOnly = errors.New("storage is in read-only mode")
)
