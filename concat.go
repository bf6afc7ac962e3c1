package flow

import (
	"github.com/jake-scott/go-flow/hint"
	"github.com/jake-scott/go-flow/iter/slice"
)

// Append returns a flow of the elements of f followed by the elements of
// other.  Both flows are consumed.
func (f *Flow[T]) Append(other *Flow[T]) *Flow[T] {
	return wrap2(f, other, "Append", func(a, b Source[T]) Source[T] {
		return &concatSource[T]{first: a, second: b}
	})
}

// Insert returns a flow of the elements of other followed by the elements
// of f.  Both flows are consumed.
func (f *Flow[T]) Insert(other *Flow[T]) *Flow[T] {
	return wrap2(f, other, "Insert", func(a, b Source[T]) Source[T] {
		return &concatSource[T]{first: b, second: a}
	})
}

// AppendValues returns a flow of the elements of f followed by xs.
func (f *Flow[T]) AppendValues(xs ...T) *Flow[T] {
	return wrap(f, "AppendValues", func(src Source[T]) Source[T] {
		return &concatSource[T]{first: src, second: slice.New(xs)}
	})
}

// InsertValues returns a flow of xs followed by the elements of f.
func (f *Flow[T]) InsertValues(xs ...T) *Flow[T] {
	return wrap(f, "InsertValues", func(src Source[T]) Source[T] {
		return &concatSource[T]{first: slice.New(xs), second: src}
	})
}

// concatSource reads second once first is exhausted.  A failure of first
// ends the sequence.
type concatSource[T any] struct {
	first  Source[T]
	second Source[T]
}

func (s *concatSource[T]) HasNext() bool {
	if s.first.HasNext() {
		return true
	}
	if s.first.Err() != nil {
		return false
	}
	return s.second.HasNext()
}

func (s *concatSource[T]) Next() T {
	if s.first.HasNext() {
		return s.first.Next()
	}
	return s.second.Next()
}

func (s *concatSource[T]) Skip() {
	if s.first.HasNext() {
		s.first.Skip()
		return
	}
	s.second.Skip()
}

func (s *concatSource[T]) SizeHint() hint.SizeHint {
	return hint.Sum(s.first.SizeHint(), s.second.SizeHint())
}

func (s *concatSource[T]) Err() error {
	return firstError(s.first.Err(), s.second.Err())
}
