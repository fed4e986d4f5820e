package wrange

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Bounds is a (low, high) pair of bounds, kept in the order given.
type Bounds[T constraints.Ordered] struct {
	Low  Bound[T]
	High Bound[T]
}

func BoundsOf[T constraints.Ordered](low, high Bound[T]) Bounds[T] {
	return Bounds[T]{Low: low, High: high}
}

// Normalized collapses an exclusive and an inclusive bound on the same value
// into a doubly inclusive pair. The pair is never reordered.
func (b Bounds[T]) Normalized() Bounds[T] {
	if b.Low.value == b.High.value && b.Low.kind != b.High.kind {
		p := NewInclusive(b.Low.value)
		return Bounds[T]{Low: p, High: p}
	}
	return b
}

// point reports whether both bounds share one value and one kind.
func (b Bounds[T]) point(kind BoundKind) bool {
	return b.Low.value == b.High.value && b.Low.kind == kind && b.High.kind == kind
}

func (b Bounds[T]) String() string {
	open, closing := "(", ")"
	if b.Low.IsInclusive() {
		open = "["
	}
	if b.High.IsInclusive() {
		closing = "]"
	}
	return fmt.Sprintf("%s%v,%v%s", open, b.Low.value, b.High.value, closing)
}
