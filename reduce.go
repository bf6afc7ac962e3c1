package flow

import "fmt"

// ReduceFunc is a generic function that combines an accumulated value with
// the next element of a flow and returns the new accumulated value.
//
// Example:
//
//	func sumLengths(total int, s string) int {
//	    return total + len(s)
//	}
type ReduceFunc[A any, T any] func(A, T) A

// Fold combines the elements of f from left to right:
//
//	fn(...fn(fn(f[0], f[1]), f[2])..., f[n-1])
//
// Fold returns ErrEmptySequence if f has no elements.
func (f *Flow[T]) Fold(fn ReduceFunc[T, T]) (T, error) {
	var zero T

	o, err := f.fold("Fold", fn)
	if err != nil {
		return zero, err
	}

	v, ok := o.Get()
	if !ok {
		return zero, fmt.Errorf("%w: Fold on flow #%d", ErrEmptySequence, f.id)
	}
	return v, nil
}

// FoldOption is Fold returning an empty Optional instead of failing when f
// has no elements.
func (f *Flow[T]) FoldOption(fn ReduceFunc[T, T]) (Optional[T], error) {
	return f.fold("FoldOption", fn)
}

func (f *Flow[T]) fold(op string, fn ReduceFunc[T, T]) (Optional[T], error) {
	src, t, err := f.consume(op)
	if err != nil {
		return None[T](), err
	}

	if !src.HasNext() {
		return None[T](), finish(src, t, 0)
	}

	acc := src.Next()
	n := 1
	for src.HasNext() {
		acc = fn(acc, src.Next())
		n++
	}

	if err := finish(src, t, n); err != nil {
		return None[T](), err
	}
	return Some(acc), nil
}

// FoldFrom combines the elements of f from left to right starting with id:
//
//	fn(...fn(fn(id, f[0]), f[1])..., f[n-1])
//
// id is returned unchanged if f has no elements.
func (f *Flow[T]) FoldFrom(id T, fn ReduceFunc[T, T]) (T, error) {
	return reduce(f, "FoldFrom", id, fn)
}

// Reduce is FoldFrom for an accumulator of a different type than the
// elements of f.
func Reduce[T, A any](f *Flow[T], id A, fn ReduceFunc[A, T]) (A, error) {
	return reduce(f, "Reduce", id, fn)
}

func reduce[T, A any](f *Flow[T], op string, id A, fn ReduceFunc[A, T]) (A, error) {
	src, t, err := f.consume(op)
	if err != nil {
		return id, err
	}

	acc := id
	n := 0
	for src.HasNext() {
		acc = fn(acc, src.Next())
		n++
	}

	if err := finish(src, t, n); err != nil {
		var zero A
		return zero, err
	}
	return acc, nil
}

// Count returns the number of elements in f.  Elements are skipped, never
// produced, so mapping functions earlier in the chain are not called.
func (f *Flow[T]) Count() (int, error) {
	src, t, err := f.consume("Count")
	if err != nil {
		return 0, err
	}

	n := 0
	for src.HasNext() {
		src.Skip()
		n++
	}

	if err := finish(src, t, n); err != nil {
		return 0, err
	}
	return n, nil
}

// ForEach calls fn for each element of f in order.
func (f *Flow[T]) ForEach(fn func(T)) error {
	src, t, err := f.consume("ForEach")
	if err != nil {
		return err
	}

	n := 0
	for src.HasNext() {
		fn(src.Next())
		n++
	}

	return finish(src, t, n)
}

// First returns the first element of f, or an empty Optional if f has no
// elements.  Only one element is read from the source.
func (f *Flow[T]) First() (Optional[T], error) {
	src, t, err := f.consume("First")
	if err != nil {
		return None[T](), err
	}

	if !src.HasNext() {
		return None[T](), finish(src, t, 0)
	}

	v := src.Next()
	if err := finish(src, t, 1); err != nil {
		return None[T](), err
	}
	return Some(v), nil
}

// Last returns the last element of f, or an empty Optional if f has no
// elements.
func (f *Flow[T]) Last() (Optional[T], error) {
	return f.fold("Last", func(_, v T) T { return v })
}
