package seed

import "errors"

var (
	// ErrNilFixture indicates RunSet or VerifySet was called without a set.
	ErrNilFixture = errors.New("nil fixture set")
)
