package flow

import "fmt"

// Pair holds two values of possibly different types.  It is the element
// type produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Indexed wraps an element along with its position in the flow that
// produced it.  It is the element type produced by Enumerate.
type Indexed[T any] struct {
	Index int
	Value T
}

// String returns a human-readable representation: "(value, index)".
func (i Indexed[T]) String() string {
	return fmt.Sprintf("(%v, %d)", i.Value, i.Index)
}
