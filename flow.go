// Package flow provides lazy, pull-based sequences for Go.
//
// A Flow wraps a Source and exposes a chain of intermediate operators
// (Map, Filter, Take, Zip, Scan, ...) that are evaluated one element at a
// time when a terminal operation (Fold, Count, ToSlice, GroupBy, ...)
// drains the chain.  Nothing is materialized between stages.
//
// Flows are single-use.  Wrapping a flow with an operator, or draining it
// with a terminal operation, transfers ownership of its elements: the
// original flow rejects every later call with ErrOwnership.
//
// Operators that change the element type are package functions (Map,
// Zip, Enumerate, ...) because Go methods cannot introduce new type
// parameters.  Type-preserving operators are also available as methods.
package flow

import (
	"fmt"
	"sync/atomic"

	"github.com/jake-scott/go-flow/hint"
)

// DefaultSizeHint is used by collecting terminal operations for initial
// allocations when the flow cannot provide size information.
var DefaultSizeHint = 16

var flowCounter atomic.Uint32

// Flow is a lazily evaluated, single-use sequence of elements of type T.
//
// The int32, int64 and float64 instantiations are compiled to separate
// machine code by the Go toolchain, so numeric flows never box their
// elements.
type Flow[T any] struct {
	src   Source[T]
	id    uint32
	owned bool
	err   error
	opts  flowOptions
}

type flowOptions struct {
	tracing  bool
	tracer   TraceFunc
	sizeHint hint.SizeHint
}

// FlowOption provides a mechanism to customize how a flow operates.
// Flows derived from a flow by an operator inherit its options.
type FlowOption func(o *flowOptions)

// WithTraceFunc sets the trace function for the flow.  Use WithTracing
// to enable/disable tracing.
func WithTraceFunc(f TraceFunc) FlowOption {
	return func(o *flowOptions) {
		o.tracer = f
	}
}

// WithTracing enables tracing for the flow.  If a custom trace function
// has not been set using WithTraceFunc, trace messages are printed by
// DefaultTracer.
func WithTracing(enable bool) FlowOption {
	return func(o *flowOptions) {
		o.tracing = enable
	}
}

// WithSizeHint provides the flow with a guideline regarding the number of
// elements its source will produce.  It is only used when the source
// itself reports an Unknown hint.
func WithSizeHint(h hint.SizeHint) FlowOption {
	return func(o *flowOptions) {
		o.sizeHint = h
	}
}

func (o *flowOptions) processOptions(opts ...FlowOption) {
	for _, f := range opts {
		f(o)
	}
}

// New returns a flow that owns src.
func New[T any](src Source[T], opts ...FlowOption) *Flow[T] {
	f := &Flow[T]{
		src:   src,
		id:    flowCounter.Add(1),
		owned: true,
	}
	f.opts.processOptions(opts...)

	if !f.opts.sizeHint.IsUnknown() && src.SizeHint().IsUnknown() {
		f.src = &hintedSource[T]{Source: src, hint: f.opts.sizeHint}
	}

	if f.opts.tracing {
		t := f.tracer("New")
		t.msg("%T source, size hint %s", src, f.src.SizeHint())
		t.end()
	}

	return f
}

// ID returns the process-wide identifier of the flow used in traces and
// error messages.
func (f *Flow[T]) ID() uint32 {
	return f.id
}

// Owned reports whether the flow may still be used.
func (f *Flow[T]) Owned() bool {
	return f.owned
}

// Err returns the error recorded when the flow was composed, for example
// ErrOwnership if the flow was built from an already consumed flow, or
// ErrInvalidArgument for a negative Take count.  Every primitive and
// terminal operation of such a flow returns the same error.
func (f *Flow[T]) Err() error {
	return f.err
}

// SizeHint describes how many elements remain in the flow.
func (f *Flow[T]) SizeHint() SizeHint {
	if f.err != nil {
		return hint.Unknown()
	}
	return f.src.SizeHint()
}

// HasNext reports whether another element is available.  If the source
// stopped because of an error, HasNext returns false and that error.
func (f *Flow[T]) HasNext() (bool, error) {
	if err := f.check("HasNext"); err != nil {
		return false, err
	}

	if f.src.HasNext() {
		return true, nil
	}
	return false, f.src.Err()
}

// Next returns the next element of the flow.
func (f *Flow[T]) Next() (T, error) {
	var zero T
	if err := f.advance("Next"); err != nil {
		return zero, err
	}

	v := f.src.Next()
	if err := f.src.Err(); err != nil {
		return zero, err
	}
	return v, nil
}

// Skip advances past the next element of the flow without producing it.
func (f *Flow[T]) Skip() error {
	if err := f.advance("Skip"); err != nil {
		return err
	}

	f.src.Skip()
	return f.src.Err()
}

func (f *Flow[T]) advance(op string) error {
	if err := f.check(op); err != nil {
		return err
	}

	if !f.src.HasNext() {
		if err := f.src.Err(); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s on flow #%d", ErrEndOfSequence, op, f.id)
	}
	return nil
}

func (f *Flow[T]) check(op string) error {
	if !f.owned {
		return f.ownershipError(op)
	}
	return f.err
}

func (f *Flow[T]) ownershipError(op string) error {
	return fmt.Errorf("%w: %s on flow #%d", ErrOwnership, op, f.id)
}

// release revokes the flow's ownership and hands its source to the caller.
func (f *Flow[T]) release(op string) (Source[T], error) {
	if !f.owned {
		return nil, f.ownershipError(op)
	}

	f.owned = false
	if f.err != nil {
		return nil, f.err
	}
	return f.src, nil
}

// consume is release for terminal operations, which also get a tracer.
func (f *Flow[T]) consume(op string) (Source[T], tracer, error) {
	src, err := f.release(op)
	if err != nil {
		return nil, nullTracer{}, err
	}
	return src, f.tracer(op), nil
}

func (f *Flow[T]) tracer(description string, v ...any) tracer {
	if f.opts.tracing {
		var t T
		description = fmt.Sprintf("(%T) %s", t, description)
		return newTracer(f.id, description, f.opts.tracer, v...)
	} else {
		return nullTracer{}
	}
}

// derive builds the flow that follows parent in a chain.
func derive[T, U any](parent *Flow[T], src Source[U]) *Flow[U] {
	return &Flow[U]{
		src:   src,
		id:    flowCounter.Add(1),
		owned: true,
		opts:  parent.opts,
	}
}

// poisoned builds a flow that fails every call with err.
func poisoned[T, U any](parent *Flow[T], err error) *Flow[U] {
	next := derive[T, U](parent, emptySource[U]{})
	next.err = err
	return next
}

// wrap revokes f and builds the next flow in the chain from its source.
func wrap[T, U any](f *Flow[T], op string, mk func(Source[T]) Source[U]) *Flow[U] {
	t := f.tracer(op)
	defer t.end()

	src, err := f.release(op)
	if err != nil {
		t.msg("composition failed: %s", err)
		return poisoned[T, U](f, err)
	}

	next := derive(f, mk(src))
	t.msg("-> flow #%d, size hint %s", next.id, next.src.SizeHint())
	return next
}

// wrap2 revokes a and b and builds a flow that reads from both.
func wrap2[A, B, U any](a *Flow[A], b *Flow[B], op string, mk func(Source[A], Source[B]) Source[U]) *Flow[U] {
	t := a.tracer("%s flow #%d", op, b.id)
	defer t.end()

	srcA, errA := a.release(op)
	srcB, errB := b.release(op)
	if err := firstError(errA, errB); err != nil {
		t.msg("composition failed: %s", err)
		return poisoned[A, U](a, err)
	}

	next := derive(a, mk(srcA, srcB))
	t.msg("-> flow #%d, size hint %s", next.id, next.src.SizeHint())
	return next
}

// invalid revokes f and returns a flow that fails with err, unless f
// could not be released in which case that error wins.
func invalid[T, U any](f *Flow[T], op string, err error) *Flow[U] {
	if _, relErr := f.release(op); relErr != nil {
		err = relErr
	}
	return poisoned[T, U](f, err)
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// finish reports the outcome of draining src to the tracer.
func finish[T any](src Source[T], t tracer, n int) error {
	defer t.end()

	if err := src.Err(); err != nil {
		t.msg("source failed after %d elements: %s", n, err)
		return err
	}

	t.msg("consumed %d elements", n)
	return nil
}

// emptySource never produces an element.
type emptySource[T any] struct{}

func (emptySource[T]) HasNext() bool { return false }
func (emptySource[T]) Next() T {
	var zero T
	return zero
}
func (emptySource[T]) Skip()                   {}
func (emptySource[T]) SizeHint() hint.SizeHint { return hint.Exact(0) }
func (emptySource[T]) Err() error              { return nil }

// hintedSource replaces the Unknown hint of a source with one supplied by
// the caller, decremented as elements are read.
type hintedSource[T any] struct {
	Source[T]
	hint hint.SizeHint
	read int
}

func (s *hintedSource[T]) Next() T {
	s.read++
	return s.Source.Next()
}

func (s *hintedSource[T]) Skip() {
	s.read++
	s.Source.Skip()
}

func (s *hintedSource[T]) SizeHint() hint.SizeHint {
	return s.hint.Minus(s.read)
}
