// Package hint implements cardinality hints that sources attach to the
// sequences they produce.
//
// A hint is one of Unknown, LowerBound(n) or Exact(n).  Flow operators
// combine the hints of their inputs so that terminal operations can size
// the containers they build before draining a sequence.
package hint

import "fmt"

// Kind describes how much is known about the length of a sequence
type Kind uint8

const (
	// KindUnknown means nothing is known about the length
	KindUnknown Kind = iota

	// KindLowerBound means the sequence has at least N elements
	KindLowerBound

	// KindExact means the sequence has exactly N elements
	KindExact
)

func (k Kind) String() string {
	switch k {
	default:
		return "unknown"
	case KindLowerBound:
		return "lower-bound"
	case KindExact:
		return "exact"
	}
}

// SizeHint is an immutable cardinality hint.  The zero value is Unknown.
type SizeHint struct {
	kind Kind
	n    int
}

// Unknown returns a hint carrying no length information.
func Unknown() SizeHint {
	return SizeHint{}
}

// LowerBound returns a hint for a sequence of at least n elements.  Negative
// values are clamped to zero.
func LowerBound(n int) SizeHint {
	return SizeHint{kind: KindLowerBound, n: max(n, 0)}
}

// Exact returns a hint for a sequence of exactly n elements.  Negative
// values are clamped to zero.
func Exact(n int) SizeHint {
	return SizeHint{kind: KindExact, n: max(n, 0)}
}

// Kind returns the precision of the hint.
func (h SizeHint) Kind() Kind {
	return h.kind
}

// Exact returns the length and true if the hint is exact.
func (h SizeHint) Exact() (int, bool) {
	return h.n, h.kind == KindExact
}

// Lower returns the smallest length the sequence may have: n for Exact and
// LowerBound hints, 0 for Unknown.
func (h SizeHint) Lower() int {
	if h.kind == KindUnknown {
		return 0
	}
	return h.n
}

// IsUnknown reports whether the hint carries no information.
func (h SizeHint) IsUnknown() bool {
	return h.kind == KindUnknown
}

// Capacity returns an initial allocation size for a container that will
// hold the sequence: the exact length, the lower bound if it is non-zero,
// or def otherwise.
func (h SizeHint) Capacity(def int) int {
	switch {
	case h.kind == KindExact:
		return h.n
	case h.kind == KindLowerBound && h.n > 0:
		return h.n
	default:
		return def
	}
}

// Degrade returns the hint of a subsequence whose length cannot be known
// until it is evaluated, such as the output of a filter.
func (h SizeHint) Degrade() SizeHint {
	if h.kind == KindUnknown {
		return h
	}
	return LowerBound(0)
}

// Plus returns the hint of a sequence with k extra elements.
func (h SizeHint) Plus(k int) SizeHint {
	switch h.kind {
	case KindExact:
		return Exact(h.n + k)
	case KindLowerBound:
		return LowerBound(h.n + k)
	default:
		return LowerBound(k)
	}
}

// Minus returns the hint of a sequence with its first k elements removed.
func (h SizeHint) Minus(k int) SizeHint {
	switch h.kind {
	case KindExact:
		return Exact(h.n - k)
	case KindLowerBound:
		return LowerBound(h.n - k)
	default:
		return h
	}
}

// String implements fmt.Stringer
func (h SizeHint) String() string {
	switch h.kind {
	case KindExact:
		return fmt.Sprintf("Exact(%d)", h.n)
	case KindLowerBound:
		return fmt.Sprintf("LowerBound(%d)", h.n)
	default:
		return "Unknown"
	}
}

// Min returns the hint of a sequence whose length is the smaller of the
// lengths described by a and b, as produced by zip and take.
func Min(a, b SizeHint) SizeHint {
	if a.kind == KindUnknown || b.kind == KindUnknown {
		return Unknown()
	}

	switch {
	case a.kind == KindExact && b.kind == KindExact:
		return Exact(min(a.n, b.n))
	case a.kind == KindExact:
		return minExactLower(a.n, b.n)
	case b.kind == KindExact:
		return minExactLower(b.n, a.n)
	default:
		return LowerBound(min(a.n, b.n))
	}
}

// the smaller of exactly e and at least l elements
func minExactLower(e, l int) SizeHint {
	if e <= l {
		return Exact(e)
	}
	return LowerBound(l)
}

// Sum returns the hint of the concatenation of sequences described by a
// and b.
func Sum(a, b SizeHint) SizeHint {
	switch {
	case a.kind == KindExact && b.kind == KindExact:
		return Exact(a.n + b.n)
	case a.kind == KindUnknown && b.kind == KindUnknown:
		return Unknown()
	default:
		return LowerBound(a.Lower() + b.Lower())
	}
}
