package wrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundCompare(t *testing.T) {
	cases := map[string]struct {
		a, b    Bound[int]
		wantCmp int
		wantOK  bool
	}{
		"LessValue":          {a: NewInclusive(3), b: NewExclusive(7), wantCmp: -1, wantOK: true},
		"GreaterValue":       {a: NewExclusive(7), b: NewInclusive(3), wantCmp: 1, wantOK: true},
		"SameInclusive":      {a: NewInclusive(3), b: NewInclusive(3), wantCmp: 0, wantOK: true},
		"SameExclusive":      {a: NewExclusive(3), b: NewExclusive(3), wantCmp: 0, wantOK: true},
		"MixedTieAmbiguous":  {a: NewExclusive(3), b: NewInclusive(3), wantCmp: 0, wantOK: false},
		"MixedTieAmbiguous2": {a: NewInclusive(3), b: NewExclusive(3), wantCmp: 0, wantOK: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cmp, ok := tc.a.Compare(tc.b)
			assert.Equal(t, tc.wantCmp, cmp)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestBoundOrderAtTie(t *testing.T) {
	e3, i3 := NewExclusive(3), NewInclusive(3)

	assert.False(t, e3.Less(i3))
	assert.False(t, i3.Less(e3))
	assert.False(t, e3.Greater(i3))
	assert.False(t, i3.Greater(e3))
	assert.False(t, e3.Equal(i3))
	assert.True(t, e3.Equal(NewExclusive(3)))
}

func TestTieBreaks(t *testing.T) {
	e3, e7 := NewExclusive(3), NewExclusive(7)
	i3, i7 := NewInclusive(3), NewInclusive(7)

	cases := map[string]struct {
		fn   func(a, b Bound[int]) Bound[int]
		a, b Bound[int]
		want Bound[int]
	}{
		// inclusive wins a union tie
		"UnionMinTie":        {fn: UnionMin[int], a: i3, b: e3, want: i3},
		"UnionMinTieSwapped": {fn: UnionMin[int], a: e3, b: i3, want: i3},
		"UnionMaxTie":        {fn: UnionMax[int], a: e7, b: i7, want: i7},
		"UnionMaxTieSwapped": {fn: UnionMax[int], a: i7, b: e7, want: i7},
		// exclusive wins an intersection tie
		"IntersectionMinTie":        {fn: IntersectionMin[int], a: i3, b: e3, want: e3},
		"IntersectionMinTieSwapped": {fn: IntersectionMin[int], a: e3, b: i3, want: e3},
		"IntersectionMaxTie":        {fn: IntersectionMax[int], a: e7, b: i7, want: e7},
		"IntersectionMaxTieSwapped": {fn: IntersectionMax[int], a: i7, b: e7, want: e7},
		// otherwise the value decides
		"UnionMinValue":        {fn: UnionMin[int], a: e3, b: i7, want: e3},
		"UnionMaxValue":        {fn: UnionMax[int], a: e3, b: i7, want: i7},
		"IntersectionMinValue": {fn: IntersectionMin[int], a: i3, b: e7, want: i3},
		"IntersectionMaxValue": {fn: IntersectionMax[int], a: i3, b: e7, want: e7},
		"SameBound":            {fn: IntersectionMin[int], a: e3, b: e3, want: e3},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fn(tc.a, tc.b))
		})
	}
}

func TestBoundsNormalized(t *testing.T) {
	cases := map[string]struct {
		in   Bounds[int]
		want Bounds[int]
	}{
		"ExclusiveInclusive": {
			in:   BoundsOf(NewExclusive(4), NewInclusive(4)),
			want: BoundsOf(NewInclusive(4), NewInclusive(4)),
		},
		"InclusiveExclusive": {
			in:   BoundsOf(NewInclusive(4), NewExclusive(4)),
			want: BoundsOf(NewInclusive(4), NewInclusive(4)),
		},
		"BothExclusive": {
			in:   BoundsOf(NewExclusive(4), NewExclusive(4)),
			want: BoundsOf(NewExclusive(4), NewExclusive(4)),
		},
		"DifferentValues": {
			in:   BoundsOf(NewExclusive(2), NewInclusive(4)),
			want: BoundsOf(NewExclusive(2), NewInclusive(4)),
		},
		"NotReordered": {
			in:   BoundsOf(NewInclusive(9), NewExclusive(1)),
			want: BoundsOf(NewInclusive(9), NewExclusive(1)),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalized())
		})
	}
}
