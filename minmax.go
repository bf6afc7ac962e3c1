package flow

import (
	"cmp"
	"fmt"
)

// CompareFunc returns a negative number when a < b, a positive number when
// a > b and zero otherwise.
type CompareFunc[T any] func(a, b T) int

// compareOrdered is cmp.Compare except that NaN sorts after every other
// value, including +Inf.
func compareOrdered[T cmp.Ordered](a, b T) int {
	aNaN := a != a
	bNaN := b != b

	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	return cmp.Compare(a, b)
}

// MinBy returns the smallest element of f according to c.  When several
// elements are equally small the first one wins.
func (f *Flow[T]) MinBy(c CompareFunc[T]) (Optional[T], error) {
	return extreme(f, "MinBy", func(v, best T) bool { return c(v, best) < 0 })
}

// MaxBy returns the largest element of f according to c.  When several
// elements are equally large the first one wins.
func (f *Flow[T]) MaxBy(c CompareFunc[T]) (Optional[T], error) {
	return extreme(f, "MaxBy", func(v, best T) bool { return c(v, best) > 0 })
}

// MinOption returns the smallest element of f in natural order, or an
// empty Optional if f has no elements.  NaN sorts last, so the result is
// only NaN if every element is.
func MinOption[T cmp.Ordered](f *Flow[T]) (Optional[T], error) {
	return extreme(f, "Min", func(v, best T) bool { return compareOrdered(v, best) < 0 })
}

// MaxOption returns the largest element of f in natural order, or an
// empty Optional if f has no elements.  NaN sorts last, so the result is
// NaN if any element is.
func MaxOption[T cmp.Ordered](f *Flow[T]) (Optional[T], error) {
	return extreme(f, "Max", func(v, best T) bool { return compareOrdered(v, best) > 0 })
}

// Min returns the smallest element of f, or def if f has no elements.
func Min[T cmp.Ordered](f *Flow[T], def T) (T, error) {
	o, err := MinOption(f)
	if err != nil {
		return def, err
	}
	return o.OrElse(def), nil
}

// Max returns the largest element of f, or def if f has no elements.
func Max[T cmp.Ordered](f *Flow[T], def T) (T, error) {
	o, err := MaxOption(f)
	if err != nil {
		return def, err
	}
	return o.OrElse(def), nil
}

// MinOrFail returns the smallest element of f, or ErrEmptySequence if f
// has no elements.
func MinOrFail[T cmp.Ordered](f *Flow[T]) (T, error) {
	return orFail[T](f.id, "Min")(MinOption(f))
}

// MaxOrFail returns the largest element of f, or ErrEmptySequence if f
// has no elements.
func MaxOrFail[T cmp.Ordered](f *Flow[T]) (T, error) {
	return orFail[T](f.id, "Max")(MaxOption(f))
}

// MinByKey returns the element of f with the smallest key.  key is called
// once per element.
func MinByKey[T any, K cmp.Ordered](f *Flow[T], key func(T) K) (Optional[T], error) {
	return extremeByKey(f, "MinByKey", key, func(c int) bool { return c < 0 })
}

// MaxByKey returns the element of f with the largest key.  key is called
// once per element.
func MaxByKey[T any, K cmp.Ordered](f *Flow[T], key func(T) K) (Optional[T], error) {
	return extremeByKey(f, "MaxByKey", key, func(c int) bool { return c > 0 })
}

func orFail[T any](id uint32, op string) func(Optional[T], error) (T, error) {
	return func(o Optional[T], err error) (T, error) {
		var zero T
		if err != nil {
			return zero, err
		}

		v, ok := o.Get()
		if !ok {
			return zero, fmt.Errorf("%w: %s on flow #%d", ErrEmptySequence, op, id)
		}
		return v, nil
	}
}

// extreme keeps the first element and replaces it whenever better reports
// true for a later one.
func extreme[T any](f *Flow[T], op string, better func(v, best T) bool) (Optional[T], error) {
	src, t, err := f.consume(op)
	if err != nil {
		return None[T](), err
	}

	if !src.HasNext() {
		return None[T](), finish(src, t, 0)
	}

	best := src.Next()
	n := 1
	for src.HasNext() {
		v := src.Next()
		if better(v, best) {
			best = v
		}
		n++
	}

	if err := finish(src, t, n); err != nil {
		return None[T](), err
	}
	return Some(best), nil
}

type keyed[T any, K cmp.Ordered] struct {
	value T
	key   K
}

func extremeByKey[T any, K cmp.Ordered](f *Flow[T], op string, key func(T) K, better func(int) bool) (Optional[T], error) {
	withKeys := Map(f, func(v T) keyed[T, K] { return keyed[T, K]{value: v, key: key(v)} })

	o, err := extreme(withKeys, op, func(v, best keyed[T, K]) bool {
		return better(compareOrdered(v.key, best.key))
	})
	if err != nil {
		return None[T](), err
	}

	if k, ok := o.Get(); ok {
		return Some(k.value), nil
	}
	return None[T](), nil
}
