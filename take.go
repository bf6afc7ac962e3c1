package flow

import (
	"fmt"

	"github.com/jake-scott/go-flow/hint"
)

// Take returns a flow of the first min(n, len(f)) elements of f.  A
// negative n produces a flow that fails with ErrInvalidArgument.
func (f *Flow[T]) Take(n int) *Flow[T] {
	if n < 0 {
		return invalid[T, T](f, "Take", fmt.Errorf("%w: Take(%d) on flow #%d", ErrInvalidArgument, n, f.id))
	}

	return wrap(f, "Take", func(src Source[T]) Source[T] {
		return &takeSource[T]{src: src, remaining: n}
	})
}

// SkipN returns a flow without the first min(n, len(f)) elements of f.
// The elements are dropped with Skip when the result is first read, so
// they are never produced.  A negative n produces a flow that fails with
// ErrInvalidArgument.
func (f *Flow[T]) SkipN(n int) *Flow[T] {
	if n < 0 {
		return invalid[T, T](f, "SkipN", fmt.Errorf("%w: SkipN(%d) on flow #%d", ErrInvalidArgument, n, f.id))
	}

	return wrap(f, "SkipN", func(src Source[T]) Source[T] {
		return &skipSource[T]{src: src, n: n}
	})
}

// Slice returns a flow of the elements of f at the positions
// idxMap(0), idxMap(1), ...  The result ends at the first i for which
// idxMap(i) is beyond the end of f.  Elements between the selected
// positions are skipped, never produced.
//
// idxMap must be strictly increasing with idxMap(0) >= 0; the flow fails
// with ErrInvalidArgument at the first index where it is not.
func (f *Flow[T]) Slice(idxMap func(int) int) *Flow[T] {
	return wrap(f, "Slice", func(src Source[T]) Source[T] {
		return &sliceSource[T]{src: src, idxMap: idxMap}
	})
}

type takeSource[T any] struct {
	src       Source[T]
	remaining int
}

func (s *takeSource[T]) HasNext() bool {
	return s.remaining > 0 && s.src.HasNext()
}

func (s *takeSource[T]) Next() T {
	s.remaining--
	return s.src.Next()
}

func (s *takeSource[T]) Skip() {
	s.remaining--
	s.src.Skip()
}

func (s *takeSource[T]) SizeHint() hint.SizeHint {
	return hint.Min(s.src.SizeHint(), hint.Exact(s.remaining))
}

func (s *takeSource[T]) Err() error {
	return s.src.Err()
}

type skipSource[T any] struct {
	src Source[T]
	n   int
}

func (s *skipSource[T]) drop() {
	for s.n > 0 && s.src.HasNext() {
		s.src.Skip()
		s.n--
	}
	s.n = 0
}

func (s *skipSource[T]) HasNext() bool {
	s.drop()
	return s.src.HasNext()
}

func (s *skipSource[T]) Next() T {
	s.drop()
	return s.src.Next()
}

func (s *skipSource[T]) Skip() {
	s.drop()
	s.src.Skip()
}

func (s *skipSource[T]) SizeHint() hint.SizeHint {
	return s.src.SizeHint().Minus(s.n)
}

func (s *skipSource[T]) Err() error {
	return s.src.Err()
}

type sliceSource[T any] struct {
	src     Source[T]
	idxMap  func(int) int
	i       int // index of the next output element
	pos     int // position of the source
	aligned bool
	done    bool
	err     error
}

// align skips the source forward to position idxMap(i).
func (s *sliceSource[T]) align() bool {
	if s.aligned {
		return true
	}
	if s.done {
		return false
	}

	target := s.idxMap(s.i)
	if target < s.pos {
		s.err = fmt.Errorf("%w: Slice index map is not strictly increasing: idxMap(%d) = %d", ErrInvalidArgument, s.i, target)
		s.done = true
		return false
	}

	for s.pos < target && s.src.HasNext() {
		s.src.Skip()
		s.pos++
	}

	if s.pos == target && s.src.HasNext() {
		s.aligned = true
		return true
	}

	s.done = true
	return false
}

func (s *sliceSource[T]) HasNext() bool {
	return s.align()
}

func (s *sliceSource[T]) Next() T {
	if !s.align() {
		var zero T
		return zero
	}

	s.aligned = false
	s.pos++
	s.i++
	return s.src.Next()
}

func (s *sliceSource[T]) Skip() {
	if !s.align() {
		return
	}

	s.aligned = false
	s.pos++
	s.i++
	s.src.Skip()
}

func (s *sliceSource[T]) SizeHint() hint.SizeHint {
	if s.done {
		return hint.Exact(0)
	}
	return s.src.SizeHint().Degrade()
}

func (s *sliceSource[T]) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.src.Err()
}
