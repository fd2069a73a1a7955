// Package sparse translates integer ranges through piecewise-linear
// range mappings without visiting the values inside them.
//
// A Range is a half-open interval [start, start+length). A Table is an
// ordered list of Mappings, each moving the values of one source range by a
// fixed offset. Translate cuts a range against every mapping in a table and
// returns the translated pieces, so a range with billions of values costs
// only as much as the number of mappings it touches.
package sparse

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRange is returned when a range is built with a negative length
// or with an end past the largest int64.
var ErrInvalidRange = errors.New("invalid range")

// Range is the half-open interval [start, start+length).
// The zero value is an empty range at 0.
type Range struct {
	start  int64
	length int64
}

// New creates a range starting at start covering length values.
func New(start, length int64) (Range, error) {
	if length < 0 {
		return Range{}, fmt.Errorf("%w: start %d, length %d", ErrInvalidRange, start, length)
	}
	if start > 0 && length > math.MaxInt64-start {
		return Range{}, fmt.Errorf("%w: start %d, length %d overflows int64", ErrInvalidRange, start, length)
	}
	return Range{start: start, length: length}, nil
}

// MustNew is like New but panics on an invalid range.
func MustNew(start, length int64) Range {
	r, err := New(start, length)
	if err != nil {
		panic(err)
	}
	return r
}

// FromBounds creates the range [start, end).
func FromBounds(start, end int64) (Range, error) {
	return New(start, end-start)
}

// Start returns the first value of the range.
func (r Range) Start() int64 {
	return r.start
}

// Len returns the number of values in the range.
func (r Range) Len() int64 {
	return r.length
}

// End returns the exclusive upper bound.
func (r Range) End() int64 {
	return r.start + r.length
}

// Empty reports whether the range holds no values.
func (r Range) Empty() bool {
	return r.length == 0
}

// Contains reports whether x lies in [start, end).
func (r Range) Contains(x int64) bool {
	return r.start <= x && x < r.End()
}

// Shift returns the range moved by offset. The moved range must still fit
// in int64; Translate only shifts onto destinations checked by NewMapping.
func (r Range) Shift(offset int64) Range {
	return Range{start: r.start + offset, length: r.length}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.start, r.End())
}
