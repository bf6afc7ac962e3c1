package flow

import "github.com/jake-scott/go-flow/hint"

// MapFunc is a generic function that takes a single element and returns
// a single transformed element.
//
// Example:
//
//	func domainName(s string) string {
//	    return strings.SplitN(s, "@", 2)[1]
//	}
type MapFunc[T any, M any] func(T) M

// Map returns a flow whose elements are m applied to each element of f,
// in order.  The length and size hint of the flow are unchanged.
//
// m is not called for elements that are skipped, for example by Count or
// SkipN.
func Map[T, M any](f *Flow[T], m MapFunc[T, M]) *Flow[M] {
	return wrap(f, "Map", func(src Source[T]) Source[M] {
		return &mapSource[T, M]{src: src, m: m}
	})
}

// Map is the method form of Map for functions that do not change the
// element type.
func (f *Flow[T]) Map(m MapFunc[T, T]) *Flow[T] {
	return Map(f, m)
}

// TryMap is Map for functions that can fail.  The first error returned by
// m ends the flow: HasNext reports false and the error is returned by the
// primitive or terminal operation that observed it.
//
// Unlike Map, m is called for skipped elements too, so a failure is
// reported however the flow is drained.
func TryMap[T, M any](f *Flow[T], m func(T) (M, error)) *Flow[M] {
	return wrap(f, "TryMap", func(src Source[T]) Source[M] {
		return &tryMapSource[T, M]{src: src, m: m}
	})
}

// Enumerate returns a flow of the elements of f paired with their index.
func Enumerate[T any](f *Flow[T]) *Flow[Indexed[T]] {
	return wrap(f, "Enumerate", func(src Source[T]) Source[Indexed[T]] {
		return &enumerateSource[T]{src: src}
	})
}

type mapSource[T, M any] struct {
	src Source[T]
	m   MapFunc[T, M]
}

func (s *mapSource[T, M]) HasNext() bool           { return s.src.HasNext() }
func (s *mapSource[T, M]) Next() M                 { return s.m(s.src.Next()) }
func (s *mapSource[T, M]) Skip()                   { s.src.Skip() }
func (s *mapSource[T, M]) SizeHint() hint.SizeHint { return s.src.SizeHint() }
func (s *mapSource[T, M]) Err() error              { return s.src.Err() }

type tryMapSource[T, M any] struct {
	src Source[T]
	m   func(T) (M, error)
	err error
}

func (s *tryMapSource[T, M]) HasNext() bool {
	return s.err == nil && s.src.HasNext()
}

func (s *tryMapSource[T, M]) Next() M {
	v, err := s.m(s.src.Next())
	if err != nil {
		s.err = err
		var zero M
		return zero
	}
	return v
}

func (s *tryMapSource[T, M]) Skip() {
	s.Next()
}

func (s *tryMapSource[T, M]) SizeHint() hint.SizeHint {
	if s.err != nil {
		return hint.Exact(0)
	}
	return s.src.SizeHint()
}

func (s *tryMapSource[T, M]) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.src.Err()
}

type enumerateSource[T any] struct {
	src Source[T]
	idx int
}

func (s *enumerateSource[T]) HasNext() bool {
	return s.src.HasNext()
}

func (s *enumerateSource[T]) Next() Indexed[T] {
	item := Indexed[T]{Index: s.idx, Value: s.src.Next()}
	s.idx++
	return item
}

func (s *enumerateSource[T]) Skip() {
	s.src.Skip()
	s.idx++
}

func (s *enumerateSource[T]) SizeHint() hint.SizeHint { return s.src.SizeHint() }
func (s *enumerateSource[T]) Err() error              { return s.src.Err() }
