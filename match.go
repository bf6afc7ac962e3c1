package flow

// AllMatch reports whether p returns true for every element of f.  It
// stops reading at the first element that fails p.  An empty flow matches.
func (f *Flow[T]) AllMatch(p FilterFunc[T]) (bool, error) {
	found, err := f.find("AllMatch", func(v T) bool { return !p(v) })
	if err != nil {
		return false, err
	}
	return !found, nil
}

// AnyMatch reports whether p returns true for at least one element of f.
// It stops reading at the first element that passes p.
func (f *Flow[T]) AnyMatch(p FilterFunc[T]) (bool, error) {
	return f.find("AnyMatch", p)
}

// NoneMatch reports whether p returns false for every element of f.  It
// stops reading at the first element that passes p.
func (f *Flow[T]) NoneMatch(p FilterFunc[T]) (bool, error) {
	found, err := f.find("NoneMatch", p)
	if err != nil {
		return false, err
	}
	return !found, nil
}

// find reads f until p returns true.
func (f *Flow[T]) find(op string, p FilterFunc[T]) (bool, error) {
	src, t, err := f.consume(op)
	if err != nil {
		return false, err
	}

	n := 0
	for src.HasNext() {
		n++
		if p(src.Next()) {
			t.msg("stopped at element %d", n-1)
			if err := finish(src, t, n); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	return false, finish(src, t, n)
}

// AreAllEqual reports whether every element of f is equal to the first.
// The whole flow is always read.  An empty flow is all equal.
func AreAllEqual[T comparable](f *Flow[T]) (bool, error) {
	src, t, err := f.consume("AreAllEqual")
	if err != nil {
		return false, err
	}

	if !src.HasNext() {
		return true, finish(src, t, 0)
	}

	first := src.Next()
	equal := true
	n := 1
	for src.HasNext() {
		if src.Next() != first {
			equal = false
		}
		n++
	}

	if err := finish(src, t, n); err != nil {
		return false, err
	}
	return equal, nil
}
