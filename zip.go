package flow

import "github.com/jake-scott/go-flow/hint"

// Zip returns a flow of pairs (a[i], b[i]), ending with the shorter of the
// two flows.  Both flows are consumed.
//
// The two sources are read in lock-step: a source is never read past the
// length of the result.
func Zip[A, B any](a *Flow[A], b *Flow[B]) *Flow[Pair[A, B]] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{First: x, Second: y}
	})
}

// ZipWith is Zip with a function combining each pair of elements.
func ZipWith[A, B, C any](a *Flow[A], b *Flow[B], fn func(A, B) C) *Flow[C] {
	return wrap2(a, b, "Zip", func(srcA Source[A], srcB Source[B]) Source[C] {
		return &zipSource[A, B, C]{a: srcA, b: srcB, fn: fn}
	})
}

type zipSource[A, B, C any] struct {
	a  Source[A]
	b  Source[B]
	fn func(A, B) C
}

func (s *zipSource[A, B, C]) HasNext() bool {
	return s.a.HasNext() && s.b.HasNext()
}

func (s *zipSource[A, B, C]) Next() C {
	x := s.a.Next()
	y := s.b.Next()
	return s.fn(x, y)
}

func (s *zipSource[A, B, C]) Skip() {
	s.a.Skip()
	s.b.Skip()
}

func (s *zipSource[A, B, C]) SizeHint() hint.SizeHint {
	return hint.Min(s.a.SizeHint(), s.b.SizeHint())
}

func (s *zipSource[A, B, C]) Err() error {
	return firstError(s.a.Err(), s.b.Err())
}
