package flow

import "github.com/jake-scott/go-flow/hint"

// FilterFunc is a generic function type that takes a single element and
// returns true if it is to be included or false if the element is to be
// excluded from the result set.
//
// Example:
//
//	func findEvenInts(i int) bool {
//	    return i%2 == 0
//	}
type FilterFunc[T any] func(T) bool

// Filter is the non-OO version of Flow.Filter().
func Filter[T any](f *Flow[T], p FilterFunc[T]) *Flow[T] {
	return f.Filter(p)
}

// Filter returns a flow of the elements of f for which p returns true,
// in their original order.  The length of the result is not known until
// it is evaluated, so an exact size hint degrades to LowerBound(0).
func (f *Flow[T]) Filter(p FilterFunc[T]) *Flow[T] {
	return wrap(f, "Filter", func(src Source[T]) Source[T] {
		return &filterSource[T]{src: src, p: p}
	})
}

// TakeWhile returns a flow of the leading elements of f for which p
// returns true.  The first element that fails p is consumed from f but is
// not part of the result.
func (f *Flow[T]) TakeWhile(p FilterFunc[T]) *Flow[T] {
	return wrap(f, "TakeWhile", func(src Source[T]) Source[T] {
		return &takeWhileSource[T]{src: src, p: p}
	})
}

// SkipWhile returns a flow that drops the leading elements of f for which
// p returns true.  The first element that fails p is the first element of
// the result.
func (f *Flow[T]) SkipWhile(p FilterFunc[T]) *Flow[T] {
	return wrap(f, "SkipWhile", func(src Source[T]) Source[T] {
		return &skipWhileSource[T]{src: src, p: p}
	})
}

// filterSource keeps one element of lookahead: the next element that
// passed the predicate.
type filterSource[T any] struct {
	src   Source[T]
	p     FilterFunc[T]
	item  T
	ready bool
}

func (s *filterSource[T]) HasNext() bool {
	for !s.ready && s.src.HasNext() {
		item := s.src.Next()
		if s.p(item) {
			s.item = item
			s.ready = true
		}
	}
	return s.ready
}

func (s *filterSource[T]) Next() T {
	var zero T
	if !s.HasNext() {
		return zero
	}

	item := s.item
	s.item = zero
	s.ready = false
	return item
}

// the predicate has to see every element, so there is nothing to save
func (s *filterSource[T]) Skip() {
	s.Next()
}

func (s *filterSource[T]) SizeHint() hint.SizeHint {
	h := s.src.SizeHint().Degrade()
	if s.ready {
		return h.Plus(1)
	}
	return h
}

func (s *filterSource[T]) Err() error {
	return s.src.Err()
}

type takeWhileSource[T any] struct {
	src   Source[T]
	p     FilterFunc[T]
	item  T
	ready bool
	done  bool
}

func (s *takeWhileSource[T]) HasNext() bool {
	if s.ready {
		return true
	}
	if s.done || !s.src.HasNext() {
		return false
	}

	item := s.src.Next()
	if !s.p(item) {
		s.done = true
		return false
	}

	s.item = item
	s.ready = true
	return true
}

func (s *takeWhileSource[T]) Next() T {
	var zero T
	if !s.HasNext() {
		return zero
	}

	item := s.item
	s.item = zero
	s.ready = false
	return item
}

func (s *takeWhileSource[T]) Skip() {
	s.Next()
}

func (s *takeWhileSource[T]) SizeHint() hint.SizeHint {
	switch {
	case s.done:
		return hint.Exact(0)
	case s.ready:
		return hint.LowerBound(1)
	default:
		return s.src.SizeHint().Degrade()
	}
}

func (s *takeWhileSource[T]) Err() error {
	return s.src.Err()
}

type skipWhileSource[T any] struct {
	src     Source[T]
	p       FilterFunc[T]
	item    T
	ready   bool
	started bool
}

// start drops the leading elements that pass the predicate and buffers
// the first one that fails it.
func (s *skipWhileSource[T]) start() {
	if s.started {
		return
	}
	s.started = true

	for s.src.HasNext() {
		item := s.src.Next()
		if !s.p(item) {
			s.item = item
			s.ready = true
			return
		}
	}
}

func (s *skipWhileSource[T]) HasNext() bool {
	s.start()
	return s.ready || s.src.HasNext()
}

func (s *skipWhileSource[T]) Next() T {
	s.start()
	if s.ready {
		var zero T
		item := s.item
		s.item = zero
		s.ready = false
		return item
	}
	return s.src.Next()
}

func (s *skipWhileSource[T]) Skip() {
	s.start()
	if s.ready {
		var zero T
		s.item = zero
		s.ready = false
		return
	}
	s.src.Skip()
}

func (s *skipWhileSource[T]) SizeHint() hint.SizeHint {
	switch {
	case !s.started:
		return s.src.SizeHint().Degrade()
	case s.ready:
		return s.src.SizeHint().Plus(1)
	default:
		return s.src.SizeHint()
	}
}

func (s *skipWhileSource[T]) Err() error {
	return s.src.Err()
}
