/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

import (
	"fmt"
	"strings"
)

// Bound of a closed integer interval. A range set compares either as
// signed or as unsigned 64-bit, never mixed.
type RangeBound interface {
	~int64 | ~uint64
}

// Closed integer interval, lower and upper included.
type Range[T RangeBound] struct {
	lower T
	upper T
}

func (r Range[T]) Lower() T { return r.lower }

func (r Range[T]) Upper() T { return r.upper }

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.lower, r.upper)
}

func (r Range[T]) contains(value T) bool {
	return (value >= r.lower) && (value <= r.upper)
}

func (r Range[T]) intersects(o Range[T]) bool {
	return (r.lower <= o.upper) && (o.lower <= r.upper)
}

// Ordered collection of closed integer intervals with a fixed signedness.
//
// Ranges are kept in add order, without deduplication or sorting. Once a
// range set is captured by an enumeration mapping or a variant option it
// is frozen and further AddRange calls panic.
//
// # Implements:
//   - fmt.Stringer
type RangeSet[T RangeBound] struct {
	ranges []Range[T]
	frozen bool
}

// Returns a new empty range set comparing as unsigned 64-bit
func NewUnsignedRangeSet() *UnsignedRangeSet { return &RangeSet[uint64]{} }

// Returns a new empty range set comparing as signed 64-bit
func NewSignedRangeSet() *SignedRangeSet { return &RangeSet[int64]{} }

type UnsignedRangeSet = RangeSet[uint64]

type SignedRangeSet = RangeSet[int64]

// Appends the closed range [lower, upper] and returns the set for chaining.
//
// # Panics:
//   - if the set is frozen,
//   - if lower is greater than upper.
func (rs *RangeSet[T]) AddRange(lower, upper T) *RangeSet[T] {
	if rs.frozen {
		panic(ErrFrozen("range set"))
	}
	if lower > upper {
		panic(ErrInvalid("range lower bound %v is greater than upper bound %v", lower, upper))
	}
	rs.ranges = append(rs.ranges, Range[T]{lower, upper})
	return rs
}

// Returns is value bracketed by at least one range of the set
func (rs *RangeSet[T]) Contains(value T) bool {
	for _, r := range rs.ranges {
		if r.contains(value) {
			return true
		}
	}
	return false
}

// Returns is there at least one pair of intersecting ranges in the set.
//
// Pairwise comparison, quadratic in the range count.
func (rs *RangeSet[T]) HasOverlaps() bool {
	for i := range rs.ranges {
		for j := i + 1; j < len(rs.ranges); j++ {
			if rs.ranges[i].intersects(rs.ranges[j]) {
				return true
			}
		}
	}
	return false
}

func (rs *RangeSet[T]) IsFrozen() bool { return rs.frozen }

// Returns range by index.
//
// # Panics:
//   - if index is out of bounds.
func (rs *RangeSet[T]) Range(index int) Range[T] {
	if (index < 0) || (index >= len(rs.ranges)) {
		panic(ErrOutOfBounds("range index %d, set has %d ranges", index, len(rs.ranges)))
	}
	return rs.ranges[index]
}

func (rs *RangeSet[T]) RangeCount() int { return len(rs.ranges) }

// Enumerates all ranges in add order.
func (rs *RangeSet[T]) Ranges(cb func(Range[T])) {
	for _, r := range rs.ranges {
		cb(r)
	}
}

func (rs *RangeSet[T]) String() string {
	s := make([]string, len(rs.ranges))
	for i, r := range rs.ranges {
		s[i] = r.String()
	}
	return "{" + strings.Join(s, ", ") + "}"
}

func (rs *RangeSet[T]) freeze() { rs.frozen = true }
