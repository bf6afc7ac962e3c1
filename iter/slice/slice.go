// Package slice implements a source that traverses uni-directionally
// over a generic slice of elements.
//
// The source reports an exact size hint.
package slice

import "github.com/jake-scott/go-flow/hint"

// Iterator traverses over a slice of elements of type T.
type Iterator[T any] struct {
	s   []T
	pos int
}

// New returns a source that traverses over the provided slice.  The
// slice is not copied.
func New[T any](s []T) *Iterator[T] {
	return &Iterator[T]{
		s: s,
	}
}

// HasNext reports whether there are elements of the slice left to read.
func (r *Iterator[T]) HasNext() bool {
	return r.pos < len(r.s)
}

// Next returns the next element of the underlying slice, or the zero
// value once the slice is exhausted.
func (r *Iterator[T]) Next() T {
	if r.pos >= len(r.s) {
		var ret T
		return ret
	}

	r.pos++
	return r.s[r.pos-1]
}

// Skip advances past the next element without reading it.
func (r *Iterator[T]) Skip() {
	if r.pos < len(r.s) {
		r.pos++
	}
}

// SizeHint returns the exact number of elements left in the slice.
func (r *Iterator[T]) SizeHint() hint.SizeHint {
	return hint.Exact(len(r.s) - r.pos)
}

// Err always returns nil; reading a slice cannot fail.
func (r *Iterator[T]) Err() error {
	return nil
}
