package flow

import (
	"iter"

	"github.com/jake-scott/go-flow/hint"
)

// FromSeq returns a flow that pulls elements from seq using iter.Pull.
//
// The pull is stopped only when seq is exhausted.  Operators such as Take
// or TakeWhile stop reading early and leave seq suspended until the
// program exits, so bound seq itself rather than the flow:
//
//	FromSeq(firstN(seq, 10))	// stops seq
//	FromSeq(seq).Take(10)		// leaves seq suspended
func FromSeq[T any](seq iter.Seq[T], opts ...FlowOption) *Flow[T] {
	next, stop := iter.Pull(seq)
	return New[T](&seqSource[T]{next: next, stop: stop}, opts...)
}

type seqSource[T any] struct {
	next  func() (T, bool)
	stop  func()
	item  T
	ready bool
	done  bool
}

func (s *seqSource[T]) HasNext() bool {
	if s.ready {
		return true
	}
	if s.done {
		return false
	}

	item, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
		return false
	}

	s.item = item
	s.ready = true
	return true
}

func (s *seqSource[T]) Next() T {
	var zero T
	if !s.HasNext() {
		return zero
	}

	item := s.item
	s.item = zero
	s.ready = false
	return item
}

func (s *seqSource[T]) Skip() {
	s.Next()
}

func (s *seqSource[T]) SizeHint() hint.SizeHint {
	return hint.Unknown()
}

func (s *seqSource[T]) Err() error {
	return nil
}
