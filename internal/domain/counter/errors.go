package counter

import "errors"

var (
	// ErrUnknownCounter indicates a sequence name other than clients or projects.
	ErrUnknownCounter = errors.New("unknown counter")
	// ErrSeqTooLow indicates seq would hand out an id that is already taken.
	ErrSeqTooLow = errors.New("counter seq below highest seeded id")
)
