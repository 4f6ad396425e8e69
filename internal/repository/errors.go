package repository

import "errors"

var (
	// ErrNotFound is returned when a requested document doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when an insert collides with an existing id or _id
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnknownStore is returned when a store type is not recognized
	ErrUnknownStore = errors.New("unknown store type")
)
