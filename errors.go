package flow

import "errors"

// Sentinel errors returned by Flow operations.  Errors are wrapped with the
// name of the failing operation and the flow id, use errors.Is to test for
// them.
var (
	// ErrOwnership is returned when a flow is used after it has been
	// wrapped by an operator or drained by a terminal operation.
	ErrOwnership = errors.New("flow: ownership violation")

	// ErrEndOfSequence is returned by Next and Skip when no elements remain.
	ErrEndOfSequence = errors.New("flow: end of sequence")

	// ErrEmptySequence is returned by reductions that need at least one
	// element, such as Fold without a seed.
	ErrEmptySequence = errors.New("flow: empty sequence")

	// ErrInvalidArgument is returned for negative counts passed to Take,
	// SkipN, Repeat and Generate, and for Slice index maps that are not
	// strictly increasing.
	ErrInvalidArgument = errors.New("flow: invalid argument")

	// ErrDuplicateKey is returned by ToMap when two elements map to the
	// same key.
	ErrDuplicateKey = errors.New("flow: duplicate key")
)
