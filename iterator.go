package flow

import "github.com/jake-scott/go-flow/hint"

// SizeHint is re-exported from the hint package for convenience.
type SizeHint = hint.SizeHint

// Source is the interface implemented by collaborators that supply
// elements to a Flow: slices, channels, scanners, generators, and every
// intermediate operator in this package.
//
// A Source is not checked for misuse.  Once handed to New it belongs to
// the Flow and must not be used directly.
type Source[T any] interface {
	// HasNext reports whether another element is available.  It may
	// buffer one element of lookahead but must be idempotent: repeated
	// calls without Next or Skip return the same answer.
	HasNext() bool

	// Next returns the next element.  It is only called after HasNext
	// has reported true.
	Next() T

	// Skip advances past the next element, avoiding the cost of
	// producing it where possible.  It is only called after HasNext has
	// reported true.
	Skip()

	// SizeHint describes how many elements remain.
	SizeHint() hint.SizeHint

	// Err returns a non-nil value if the source stopped because of an
	// error rather than reaching the end of its data.
	Err() error
}

// Iterator is the checked, ownership-aware element contract implemented
// by *Flow.  Every method fails with ErrOwnership once the iterator has
// been wrapped by an operator or drained by a terminal operation.
type Iterator[T any] interface {
	// HasNext reports whether another element is available.  It has no
	// observable side effect.
	HasNext() (bool, error)

	// Next returns the next element, or ErrEndOfSequence if there is
	// none.
	Next() (T, error)

	// Skip advances past the next element without producing it.
	Skip() error

	// SizeHint describes how many elements remain.
	SizeHint() SizeHint

	// Owned reports whether the iterator may still be used.
	Owned() bool

	// Err returns the error recorded when the iterator was composed, if
	// any.
	Err() error
}

var _ Iterator[int] = (*Flow[int])(nil)
