package client

import "errors"

var (
	// ErrDuplicateID indicates two clients share an id.
	ErrDuplicateID = errors.New("duplicate client id")
)
