package flow

import (
	"math"

	"github.com/jake-scott/go-flow/hint"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types supported by the arithmetic
// operations of this package.
type Number interface {
	constraints.Integer | constraints.Float
}

// The primitive specializations of Flow.
type (
	Int32Flow   = Flow[int32]
	Int64Flow   = Flow[int64]
	Float64Flow = Flow[float64]
)

// Until returns the flow 0, 1, ..., n-1.  It is empty if n <= 0.
func Until[I constraints.Integer](n I, opts ...FlowOption) *Flow[I] {
	return Between(0, n, opts...)
}

// Between returns the flow lo, lo+1, ..., hi-1.  It is empty if hi <= lo.
func Between[I constraints.Integer](lo, hi I, opts ...FlowOption) *Flow[I] {
	return New[I](&rangeSource[I]{cur: lo, hi: hi}, opts...)
}

// Sum returns the sum of the elements of f, or zero if f is empty.
func Sum[N Number](f *Flow[N]) (N, error) {
	return f.FoldFrom(0, func(a, b N) N { return a + b })
}

type rangeSource[I constraints.Integer] struct {
	cur I
	hi  I
}

func (s *rangeSource[I]) HasNext() bool {
	return s.cur < s.hi
}

func (s *rangeSource[I]) Next() I {
	v := s.cur
	s.cur++
	return v
}

func (s *rangeSource[I]) Skip() {
	s.cur++
}

func (s *rangeSource[I]) SizeHint() hint.SizeHint {
	if s.cur >= s.hi {
		return hint.Exact(0)
	}

	// two's complement distance, exact for any hi > cur
	d := uint64(s.hi) - uint64(s.cur)
	if d > math.MaxInt {
		return hint.LowerBound(math.MaxInt)
	}
	return hint.Exact(int(d))
}

func (s *rangeSource[I]) Err() error {
	return nil
}
