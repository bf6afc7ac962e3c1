package flow

import "fmt"

// Optional holds a value that may be absent.  It is returned by terminal
// operations that have no answer for an empty flow, such as MinOption and
// FoldOption.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and true, or the zero value and false if the
// Optional is empty.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsPresent reports whether the Optional holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// OrElse returns the value, or def if the Optional is empty.
func (o Optional[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// String implements fmt.Stringer
func (o Optional[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
