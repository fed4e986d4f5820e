// Package wrange implements wrapping ranges over a totally ordered domain.
//
// When the low bound of a range is not greater than its high bound it is a
// normal continuous range (Convergent). When the low bound is greater than the
// high bound the range wraps past the maximum of the domain back to its
// minimum and denotes [MIN, high] + [low, MAX] (Divergent).
package wrange

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Kind is the variant of a Wrange.
type Kind uint8

const (
	Empty Kind = iota
	Full
	Convergent
	Divergent
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Full:
		return "full"
	case Convergent:
		return "convergent"
	case Divergent:
		return "divergent"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Wrange is a wrapping range. The zero value is the empty range.
type Wrange[T constraints.Ordered] struct {
	kind   Kind
	bounds Bounds[T]
}

// New returns the range from a to b. It wraps when a lies after b; a tie
// between an exclusive and an inclusive bound does not count as after.
func New[T constraints.Ordered](a, b Bound[T]) Wrange[T] {
	if a.Greater(b) {
		return Wrange[T]{kind: Divergent, bounds: BoundsOf(a, b)}
	}
	return Wrange[T]{kind: Convergent, bounds: BoundsOf(a, b)}
}

func NewEmpty[T constraints.Ordered]() Wrange[T] { return Wrange[T]{kind: Empty} }

func NewFull[T constraints.Ordered]() Wrange[T] { return Wrange[T]{kind: Full} }

// NewClosed returns the range [a, b].
func NewClosed[T constraints.Ordered](a, b T) Wrange[T] {
	return New(NewInclusive(a), NewInclusive(b))
}

// NewOpen returns the range (a, b).
func NewOpen[T constraints.Ordered](a, b T) Wrange[T] {
	return New(NewExclusive(a), NewExclusive(b))
}

// divergent builds a wrapping range without consulting the bound order, for
// callers that already know the result covers both poles.
func divergent[T constraints.Ordered](low, high Bound[T]) Wrange[T] {
	return Wrange[T]{kind: Divergent, bounds: BoundsOf(low, high)}
}

func convergent[T constraints.Ordered](low, high Bound[T]) Wrange[T] {
	return Wrange[T]{kind: Convergent, bounds: BoundsOf(low, high)}
}

func (w Wrange[T]) Kind() Kind { return w.kind }

// Bounds returns the bounds of a convergent or divergent range; ok is false
// for Empty and Full.
func (w Wrange[T]) Bounds() (b Bounds[T], ok bool) {
	switch w.kind {
	case Empty, Full:
		return Bounds[T]{}, false
	case Convergent, Divergent:
		return w.bounds, true
	}
	panic(fmt.Sprintf("wrange: invalid kind %d", w.kind))
}

func (w Wrange[T]) Equal(other Wrange[T]) bool {
	return w == other
}

// Set returns a set holding only w.
func (w Wrange[T]) Set() Set[T] {
	return SetOf(w)
}

// Normalized folds the degenerate ranges whose meaning does not depend on the
// domain: an open single point is Empty and a closed wrap onto itself is Full.
func (w Wrange[T]) Normalized() Wrange[T] {
	switch w.kind {
	case Empty, Full:
		return w
	case Convergent:
		b := w.bounds.Normalized()
		if b.point(Exclusive) {
			return NewEmpty[T]()
		}
		return convergent(b.Low, b.High)
	case Divergent:
		b := w.bounds.Normalized()
		if b.point(Inclusive) {
			return NewFull[T]()
		}
		return divergent(b.Low, b.High)
	}
	panic(fmt.Sprintf("wrange: invalid kind %d", w.kind))
}

// IsEmpty reports whether w normalizes to Empty.
func (w Wrange[T]) IsEmpty() bool {
	return w.Normalized().kind == Empty
}

// Contains reports whether v is one of the points denoted by w.
func (w Wrange[T]) Contains(v T) bool {
	n := w.Normalized()
	switch n.kind {
	case Empty:
		return false
	case Full:
		return true
	case Convergent:
		return n.bounds.Low.admitsAbove(v) && n.bounds.High.admitsBelow(v)
	case Divergent:
		return n.bounds.Low.admitsAbove(v) || n.bounds.High.admitsBelow(v)
	}
	panic(fmt.Sprintf("wrange: invalid kind %d", n.kind))
}

// Intersection returns the points shared by w and other. A divergent range
// can overlap another range in two places, so the result is a set.
func (w Wrange[T]) Intersection(other Wrange[T]) Set[T] {
	// a half open point such as (3,3] is the point 3, not a gap
	w, other = w.pointNormalized(), other.pointNormalized()

	switch w.kind {
	case Empty:
		return NewEmpty[T]().Set()
	case Full:
		if other.kind == Empty {
			return NewEmpty[T]().Set()
		}
		return other.Set()
	case Convergent:
		switch other.kind {
		case Empty:
			return NewEmpty[T]().Set()
		case Full:
			return w.Set()
		case Convergent:
			return intersectConvergent(w.bounds, other.bounds)
		case Divergent:
			return intersectMixed(other.bounds, w.bounds)
		}
	case Divergent:
		switch other.kind {
		case Empty:
			return NewEmpty[T]().Set()
		case Full:
			return w.Set()
		case Convergent:
			return intersectMixed(w.bounds, other.bounds)
		case Divergent:
			return intersectDivergent(w.bounds, other.bounds)
		}
	}
	panic(fmt.Sprintf("wrange: invalid kinds %d and %d", w.kind, other.kind))
}

// pointNormalized normalizes the bounds of w but keeps its kind, so an open
// point stays convergent and a closed wrap onto itself stays divergent.
func (w Wrange[T]) pointNormalized() Wrange[T] {
	switch w.kind {
	case Empty, Full:
		return w
	case Convergent, Divergent:
		return Wrange[T]{kind: w.kind, bounds: w.bounds.Normalized()}
	}
	panic(fmt.Sprintf("wrange: invalid kind %d", w.kind))
}

// intersectConvergent intersects [a0,a1] and [b0,b1].
func intersectConvergent[T constraints.Ordered](a, b Bounds[T]) Set[T] {
	if precedes(b.Low, a.Low) {
		a, b = b, a
	}
	// a starts first; with identical low bounds either may end first.
	if endsBefore(a.High, b.Low) || endsBefore(b.High, a.Low) {
		return NewEmpty[T]().Set()
	}
	return New(IntersectionMax(a.Low, b.Low), IntersectionMin(a.High, b.High)).Set()
}

// intersectDivergent intersects two wrapping ranges. Both contain the seam,
// so the wrapped overlap always exists. One range's high pole can also reach
// into the other's low pole, which adds a second, convergent piece.
func intersectDivergent[T constraints.Ordered](a, b Bounds[T]) Set[T] {
	out := []Wrange[T]{
		divergent(IntersectionMax(a.Low, b.Low), IntersectionMin(a.High, b.High)),
	}
	if !endsBefore(a.High, b.Low) {
		out = append(out, New(b.Low, a.High))
	}
	if !endsBefore(b.High, a.Low) {
		out = append(out, New(a.Low, b.High))
	}
	return SetOf(out...)
}

// intersectMixed intersects the divergent range d with the convergent range
// c. c can overlap the low pole (everything up to d.High), the high pole
// (everything from d.Low) or both.
func intersectMixed[T constraints.Ordered](d, c Bounds[T]) Set[T] {
	lowPole := !endsBefore(d.High, c.Low)
	highPole := !endsBefore(c.High, d.Low)

	switch {
	case lowPole && highPole:
		return SetOf(
			New(c.Low, IntersectionMin(d.High, c.High)),
			New(IntersectionMax(d.Low, c.Low), c.High),
		)
	// c may lie wholly inside one pole, so clamp to both of its bounds
	// rather than pairing d's bound with c's.
	case lowPole:
		return New(c.Low, IntersectionMin(d.High, c.High)).Set()
	case highPole:
		return New(IntersectionMax(d.Low, c.Low), c.High).Set()
	}
	return NewEmpty[T]().Set()
}

func (w Wrange[T]) String() string {
	switch w.kind {
	case Empty:
		return "empty"
	case Full:
		return "full"
	case Convergent, Divergent:
		return w.bounds.String()
	}
	return w.kind.String()
}
