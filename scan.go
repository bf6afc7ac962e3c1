package flow

import "github.com/jake-scott/go-flow/hint"

// Scan returns the running accumulation of f:
//
//	f[0], acc(f[0], f[1]), acc(acc(f[0], f[1]), f[2]), ...
//
// The result has the same length as f.
func (f *Flow[T]) Scan(acc ReduceFunc[T, T]) *Flow[T] {
	return wrap(f, "Scan", func(src Source[T]) Source[T] {
		return &scanSource[T]{src: src, acc: acc}
	})
}

// ScanFrom returns the running accumulation of f starting from id:
//
//	id, acc(id, f[0]), acc(acc(id, f[0]), f[1]), ...
//
// The result has one more element than f.
func (f *Flow[T]) ScanFrom(id T, acc ReduceFunc[T, T]) *Flow[T] {
	return ScanTo(f, id, acc)
}

// ScanTo is ScanFrom for an accumulator of a different type than the
// elements of f.
func ScanTo[T, A any](f *Flow[T], id A, acc ReduceFunc[A, T]) *Flow[A] {
	return wrap(f, "Scan", func(src Source[T]) Source[A] {
		return &seededScanSource[T, A]{src: src, acc: acc, cur: id}
	})
}

type scanSource[T any] struct {
	src     Source[T]
	acc     ReduceFunc[T, T]
	cur     T
	started bool
}

func (s *scanSource[T]) HasNext() bool {
	return s.src.HasNext()
}

func (s *scanSource[T]) Next() T {
	item := s.src.Next()
	if s.started {
		s.cur = s.acc(s.cur, item)
	} else {
		s.cur = item
		s.started = true
	}
	return s.cur
}

// later elements depend on this one, so it has to be accumulated
func (s *scanSource[T]) Skip() {
	s.Next()
}

func (s *scanSource[T]) SizeHint() hint.SizeHint { return s.src.SizeHint() }
func (s *scanSource[T]) Err() error              { return s.src.Err() }

type seededScanSource[T, A any] struct {
	src     Source[T]
	acc     ReduceFunc[A, T]
	cur     A
	emitted bool
}

func (s *seededScanSource[T, A]) HasNext() bool {
	return !s.emitted || s.src.HasNext()
}

func (s *seededScanSource[T, A]) Next() A {
	if !s.emitted {
		s.emitted = true
		return s.cur
	}

	s.cur = s.acc(s.cur, s.src.Next())
	return s.cur
}

func (s *seededScanSource[T, A]) Skip() {
	s.Next()
}

func (s *seededScanSource[T, A]) SizeHint() hint.SizeHint {
	if !s.emitted {
		return s.src.SizeHint().Plus(1)
	}
	return s.src.SizeHint()
}

func (s *seededScanSource[T, A]) Err() error {
	return s.src.Err()
}
