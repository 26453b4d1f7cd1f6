package domain

import "math"

// Range is an inclusive interval [Start, End] of candidate values.
// Values built with NewRange always satisfy Start <= End.
type Range struct {
	Start uint64
	End   uint64
}

// NewRange returns the range covering a and b, swapping them if they arrive
// in descending order.
func NewRange(a, b uint64) Range {
	if b < a {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// Span returns the number of candidates in the range.
// ok is false when the count is 2^64, i.e. the range is [0, MaxUint64].
func (r Range) Span() (n uint64, ok bool) {
	d := r.End - r.Start
	if d == math.MaxUint64 {
		return 0, false
	}
	return d + 1, true
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v uint64) bool {
	return v >= r.Start && v <= r.End
}
