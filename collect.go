package flow

import "fmt"

// ToSlice returns the elements of f in a new slice.  The initial capacity
// comes from the size hint of f, or DefaultSizeHint if it is Unknown.  An
// empty flow produces an empty, non-nil slice.
func (f *Flow[T]) ToSlice() ([]T, error) {
	return Collect(f,
		func(capHint int) []T { return make([]T, 0, capHint) },
		func(s []T, v T) []T { return append(s, v) },
	)
}

// Collect adds the elements of f to a container created by newC.  newC is
// passed a capacity derived from the size hint of f.  add returns the
// container to use for the next element, which allows append-style
// functions.
func Collect[T, C any](f *Flow[T], newC func(capHint int) C, add func(C, T) C) (C, error) {
	var zero C

	src, t, err := f.consume("Collect")
	if err != nil {
		return zero, err
	}

	capHint := src.SizeHint().Capacity(DefaultSizeHint)
	t.msg("initial capacity %d", capHint)

	c := newC(capHint)
	n := 0
	for src.HasNext() {
		c = add(c, src.Next())
		n++
	}

	if err := finish(src, t, n); err != nil {
		return zero, err
	}
	return c, nil
}

// ToMap returns a map built from the key and value of each element of f.
// Two elements with the same key cause ToMap to stop and return an error
// wrapping ErrDuplicateKey.
func ToMap[T any, K comparable, V any](f *Flow[T], key func(T) K, value func(T) V) (map[K]V, error) {
	src, t, err := f.consume("ToMap")
	if err != nil {
		return nil, err
	}

	m := make(map[K]V, src.SizeHint().Capacity(DefaultSizeHint))
	n := 0
	for src.HasNext() {
		v := src.Next()
		n++

		k := key(v)
		if _, ok := m[k]; ok {
			if err := finish(src, t, n); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		m[k] = value(v)
	}

	if err := finish(src, t, n); err != nil {
		return nil, err
	}
	return m, nil
}

// GroupBy partitions the elements of f by the key returned by classifier.
// Each bucket holds its elements in the order they appear in f.
func GroupBy[T any, K comparable](f *Flow[T], classifier func(T) K) (map[K][]T, error) {
	src, t, err := f.consume("GroupBy")
	if err != nil {
		return nil, err
	}

	groups := make(map[K][]T)
	n := 0
	for src.HasNext() {
		v := src.Next()
		k := classifier(v)
		groups[k] = append(groups[k], v)
		n++
	}

	t.msg("%d groups", len(groups))
	if err := finish(src, t, n); err != nil {
		return nil, err
	}
	return groups, nil
}

// Partition splits f into the elements for which p returns true and
// those for which it returns false, each in their original order.
func (f *Flow[T]) Partition(p FilterFunc[T]) (matched, unmatched []T, err error) {
	src, t, err := f.consume("Partition")
	if err != nil {
		return nil, nil, err
	}

	n := 0
	for src.HasNext() {
		v := src.Next()
		if p(v) {
			matched = append(matched, v)
		} else {
			unmatched = append(unmatched, v)
		}
		n++
	}

	if err := finish(src, t, n); err != nil {
		return nil, nil, err
	}
	return matched, unmatched, nil
}
