// Package channel implements a source that reads a data stream from
// the supplied channel.
package channel

import (
	"context"

	"github.com/jake-scott/go-flow/hint"
)

// Iterator reads elements of type T from a channel until the channel is
// closed or the context expires.
//
// HasNext blocks until an element is available, the channel is closed or
// the context is done.  The received element is buffered so that HasNext
// can be called any number of times before Next.
type Iterator[T any] struct {
	ctx   context.Context
	ch    <-chan T
	item  T
	ready bool
	done  bool
	err   error
}

// New returns a source that reads the provided channel.  The channel
// source does not know how many elements will arrive, so its size hint
// is Unknown.
func New[T any](ctx context.Context, ch <-chan T) *Iterator[T] {
	return &Iterator[T]{
		ctx: ctx,
		ch:  ch,
	}
}

// HasNext reads an element from the channel if one is not already
// buffered.  It returns false if the channel was closed or if the context
// expired; in the latter case Err returns the context's error.
func (i *Iterator[T]) HasNext() bool {
	if i.ready {
		return true
	}
	if i.done {
		return false
	}

	// a cancelled context wins over a channel that still has data
	if err := i.ctx.Err(); err != nil {
		i.err = err
		i.done = true
		return false
	}

	select {
	case item, ok := <-i.ch:
		if ok {
			i.item = item
			i.ready = true
		} else {
			// the read failed due to empty closed channel
			i.done = true
		}
	case <-i.ctx.Done():
		i.err = i.ctx.Err()
		i.done = true
	}

	return i.ready
}

// Next returns the buffered element, or the zero value of T if there is
// none.
func (i *Iterator[T]) Next() T {
	var zero T
	if !i.HasNext() {
		return zero
	}

	item := i.item
	i.item = zero
	i.ready = false
	return item
}

// Skip discards the next element.
func (i *Iterator[T]) Skip() {
	i.Next()
}

// SizeHint returns Unknown.
func (i *Iterator[T]) SizeHint() hint.SizeHint {
	return hint.Unknown()
}

// Err returns the context expiry reason if any from a previous call to
// HasNext, otherwise it returns nil.
func (i *Iterator[T]) Err() error {
	return i.err
}
