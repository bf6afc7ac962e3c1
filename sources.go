package flow

import (
	"context"
	"fmt"

	"github.com/jake-scott/go-flow/hint"
	"github.com/jake-scott/go-flow/iter/channel"
	"github.com/jake-scott/go-flow/iter/scanner"
	"github.com/jake-scott/go-flow/iter/slice"
)

// Of returns a flow over the supplied elements.
func Of[T any](xs ...T) *Flow[T] {
	return New[T](slice.New(xs))
}

// FromSlice returns a flow backed by the provided slice.  The slice is not
// copied and must not be modified while the flow is in use.
func FromSlice[T any](s []T, opts ...FlowOption) *Flow[T] {
	return New[T](slice.New(s), opts...)
}

// Empty returns a flow with no elements.
func Empty[T any](opts ...FlowOption) *Flow[T] {
	return New[T](emptySource[T]{}, opts...)
}

// FromChannel returns a flow that reads ch until it is closed or ctx is
// done.  If the context expires, terminal operations return its error.
func FromChannel[T any](ctx context.Context, ch <-chan T, opts ...FlowOption) *Flow[T] {
	return New[T](channel.New(ctx, ch), opts...)
}

// FromScanner returns a flow over the tokens produced by s, typically a
// *bufio.Scanner.
func FromScanner(s scanner.Scanner, opts ...FlowOption) *Flow[string] {
	return New[string](scanner.New(s), opts...)
}

// Repeat returns a flow that produces v n times.
func Repeat[T any](v T, n int, opts ...FlowOption) *Flow[T] {
	if n < 0 {
		return invalidSource[T](fmt.Errorf("%w: Repeat(%d)", ErrInvalidArgument, n), opts...)
	}
	return Generate(n, func(int) T { return v }, opts...)
}

// Generate returns a flow of n elements where element i is fn(i).  fn is
// not called for skipped elements.
func Generate[T any](n int, fn func(int) T, opts ...FlowOption) *Flow[T] {
	if n < 0 {
		return invalidSource[T](fmt.Errorf("%w: Generate(%d)", ErrInvalidArgument, n), opts...)
	}
	return New[T](&generateSource[T]{n: n, fn: fn}, opts...)
}

// Iterate returns an infinite flow: seed, next(seed), next(next(seed)), ...
// Bound it with Take, TakeWhile or Slice before using a terminal operation
// that drains.
func Iterate[T any](seed T, next func(T) T, opts ...FlowOption) *Flow[T] {
	return New[T](&iterateSource[T]{cur: seed, next: next}, opts...)
}

func invalidSource[T any](err error, opts ...FlowOption) *Flow[T] {
	f := New[T](emptySource[T]{}, opts...)
	f.err = err
	return f
}

type generateSource[T any] struct {
	i  int
	n  int
	fn func(int) T
}

func (s *generateSource[T]) HasNext() bool {
	return s.i < s.n
}

func (s *generateSource[T]) Next() T {
	v := s.fn(s.i)
	s.i++
	return v
}

func (s *generateSource[T]) Skip() {
	s.i++
}

func (s *generateSource[T]) SizeHint() hint.SizeHint {
	return hint.Exact(s.n - s.i)
}

func (s *generateSource[T]) Err() error {
	return nil
}

type iterateSource[T any] struct {
	cur  T
	next func(T) T
}

func (s *iterateSource[T]) HasNext() bool {
	return true
}

func (s *iterateSource[T]) Next() T {
	v := s.cur
	s.cur = s.next(s.cur)
	return v
}

func (s *iterateSource[T]) Skip() {
	s.Next()
}

func (s *iterateSource[T]) SizeHint() hint.SizeHint {
	return hint.Unknown()
}

func (s *iterateSource[T]) Err() error {
	return nil
}
