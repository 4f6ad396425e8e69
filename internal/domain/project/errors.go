package project

import "errors"

var (
	// ErrDuplicateID indicates two projects share an id.
	ErrDuplicateID = errors.New("duplicate project id")
	// ErrUnknownClient indicates client_id points at no known client.
	ErrUnknownClient = errors.New("project references unknown client")
)
