package wrange

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// BoundKind tells whether the value of a Bound is part of the range.
type BoundKind uint8

const (
	Exclusive BoundKind = iota
	Inclusive
)

func (k BoundKind) String() string {
	switch k {
	case Exclusive:
		return "exclusive"
	case Inclusive:
		return "inclusive"
	}
	return fmt.Sprintf("BoundKind(%d)", uint8(k))
}

// Bound is one edge of a range.
type Bound[T constraints.Ordered] struct {
	kind  BoundKind
	value T
}

func NewExclusive[T constraints.Ordered](v T) Bound[T] {
	return Bound[T]{kind: Exclusive, value: v}
}

func NewInclusive[T constraints.Ordered](v T) Bound[T] {
	return Bound[T]{kind: Inclusive, value: v}
}

func (b Bound[T]) Kind() BoundKind { return b.kind }

func (b Bound[T]) Value() T { return b.value }

func (b Bound[T]) IsInclusive() bool { return b.kind == Inclusive }

func (b Bound[T]) IsExclusive() bool { return b.kind == Exclusive }

// Equal reports whether b and other have the same value and kind.
func (b Bound[T]) Equal(other Bound[T]) bool {
	return b == other
}

// Compare returns an integer comparing two bounds by value.
// The result will be 0 if b == other, -1 if b < other, and +1 if b > other.
// An exclusive and an inclusive bound on the same value have no definite
// order: Compare returns ok=false for them and callers must pick one of the
// Union or Intersection tie-break functions instead.
func (b Bound[T]) Compare(other Bound[T]) (cmp int, ok bool) {
	switch {
	case b.value < other.value:
		return -1, true
	case b.value > other.value:
		return 1, true
	case b.kind != other.kind:
		return 0, false
	}
	return 0, true
}

// Less reports whether b lies strictly before other. Ties are never less.
func (b Bound[T]) Less(other Bound[T]) bool { return b.value < other.value }

// Greater reports whether b lies strictly after other. Ties are never greater.
func (b Bound[T]) Greater(other Bound[T]) bool { return b.value > other.value }

func (b Bound[T]) String() string {
	return fmt.Sprintf("%s(%v)", b.kind, b.value)
}

// UnionMin returns the lower of a and b; at a tie the inclusive bound wins.
func UnionMin[T constraints.Ordered](a, b Bound[T]) Bound[T] {
	switch {
	case a.value < b.value:
		return a
	case b.value < a.value:
		return b
	}
	return widest(a, b)
}

// UnionMax returns the higher of a and b; at a tie the inclusive bound wins.
func UnionMax[T constraints.Ordered](a, b Bound[T]) Bound[T] {
	switch {
	case a.value > b.value:
		return a
	case b.value > a.value:
		return b
	}
	return widest(a, b)
}

// IntersectionMin returns the lower of a and b; at a tie the exclusive bound
// wins.
func IntersectionMin[T constraints.Ordered](a, b Bound[T]) Bound[T] {
	switch {
	case a.value < b.value:
		return a
	case b.value < a.value:
		return b
	}
	return narrowest(a, b)
}

// IntersectionMax returns the higher of a and b; at a tie the exclusive bound
// wins.
func IntersectionMax[T constraints.Ordered](a, b Bound[T]) Bound[T] {
	switch {
	case a.value > b.value:
		return a
	case b.value > a.value:
		return b
	}
	return narrowest(a, b)
}

func widest[T constraints.Ordered](a, b Bound[T]) Bound[T] {
	if b.kind == Inclusive {
		return b
	}
	return a
}

func narrowest[T constraints.Ordered](a, b Bound[T]) Bound[T] {
	if b.kind == Exclusive {
		return b
	}
	return a
}

// endsBefore reports whether no point can lie both at or below hi and at or
// above lo: hi's value is below lo's, or they share a value that at least one
// of them excludes.
func endsBefore[T constraints.Ordered](hi, lo Bound[T]) bool {
	if hi.value != lo.value {
		return hi.value < lo.value
	}
	return hi.kind == Exclusive || lo.kind == Exclusive
}

// precedes is a total order on lower bounds: by value, and at a tie the
// inclusive bound starts first.
func precedes[T constraints.Ordered](a, b Bound[T]) bool {
	if a.value != b.value {
		return a.value < b.value
	}
	return a.kind == Inclusive && b.kind == Exclusive
}

// admitsAbove reports whether v lies at or above the lower bound b.
func (b Bound[T]) admitsAbove(v T) bool {
	return v > b.value || (v == b.value && b.kind == Inclusive)
}

// admitsBelow reports whether v lies at or below the upper bound b.
func (b Bound[T]) admitsBelow(v T) bool {
	return v < b.value || (v == b.value && b.kind == Inclusive)
}
