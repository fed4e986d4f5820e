package wrange

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Set is the union of its member ranges. Members are kept as given: order
// and duplicates carry no meaning and nothing is merged.
type Set[T constraints.Ordered] struct {
	members []Wrange[T]
}

// SetOf returns the set holding ws. The slice is copied.
func SetOf[T constraints.Ordered](ws ...Wrange[T]) Set[T] {
	return Set[T]{members: append([]Wrange[T]{}, ws...)}
}

// Members returns a copy of the member ranges.
func (s Set[T]) Members() []Wrange[T] {
	return append([]Wrange[T]{}, s.members...)
}

func (s Set[T]) Len() int { return len(s.members) }

// Normalized normalizes every member; members are not merged, reordered or
// removed.
func (s Set[T]) Normalized() Set[T] {
	return Set[T]{members: lo.Map(s.members, func(w Wrange[T], _ int) Wrange[T] {
		return w.Normalized()
	})}
}

// Union returns the members of s followed by the members of o.
func (s Set[T]) Union(o Set[T]) Set[T] {
	out := make([]Wrange[T], 0, len(s.members)+len(o.members))
	out = append(out, s.members...)
	out = append(out, o.members...)
	return Set[T]{members: out}
}

// Intersection distributes the intersection over both unions:
// (A1 + A2 + ...) * (B1 + B2 + ...) = A1*B1 + A1*B2 + ... .
// A set without members intersects to {Empty}.
func (s Set[T]) Intersection(o Set[T]) Set[T] {
	if len(s.members) == 0 || len(o.members) == 0 {
		return NewEmpty[T]().Set()
	}
	return Set[T]{members: lo.FlatMap(s.members, func(a Wrange[T], _ int) []Wrange[T] {
		return lo.FlatMap(o.members, func(b Wrange[T], _ int) []Wrange[T] {
			return a.Intersection(b).members
		})
	})}
}

// Contains reports whether any member contains v.
func (s Set[T]) Contains(v T) bool {
	return lo.SomeBy(s.members, func(w Wrange[T]) bool { return w.Contains(v) })
}

// IsEmpty reports whether every member normalizes to Empty. A set without
// members is empty.
func (s Set[T]) IsEmpty() bool {
	return lo.EveryBy(s.members, func(w Wrange[T]) bool { return w.IsEmpty() })
}

// Equal reports whether s and o hold the same ranges, ignoring order and
// multiplicity. Members are compared as they are, not normalized.
func (s Set[T]) Equal(o Set[T]) bool {
	return lo.EveryBy(s.members, o.has) && lo.EveryBy(o.members, s.has)
}

func (s Set[T]) has(w Wrange[T]) bool {
	return lo.ContainsBy(s.members, w.Equal)
}

func (s Set[T]) String() string {
	parts := lo.Map(s.members, func(w Wrange[T], _ int) string { return w.String() })
	return "{" + strings.Join(parts, ", ") + "}"
}
