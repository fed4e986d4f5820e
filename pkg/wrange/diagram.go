package wrange

import (
	"errors"
	"fmt"
	"strings"
)

// Diagrams draw small uint8 ranges, one column per value:
//
//	o  inclusive bound
//	x  exclusive bound
//	-  covered gap
//	   (space) uncovered gap
//
// "  o---x  " is [2,6), "--o   o--" wraps and is [6,2], and a single marker
// between uncovered gaps is a one point range. The gaps are circular: the gap
// after the last marker continues at the start of the line.

var ErrMalformedDiagram = errors.New("malformed diagram")

const maxDiagramWidth = 256

type diagramGap struct {
	from, to int
	covered  bool
}

// ParseDiagramSet returns the set of ranges drawn by s.
func ParseDiagramSet(s string) (Set[uint8], error) {
	s = strings.ToLower(s)
	if len(s) > maxDiagramWidth {
		return Set[uint8]{}, fmt.Errorf("%w: %d columns, max %d: |%s|", ErrMalformedDiagram, len(s), maxDiagramWidth, s)
	}

	var markers []int
	for i := 0; i < len(s); i++ {
		if s[i] == 'o' || s[i] == 'x' {
			markers = append(markers, i)
		}
	}
	if len(markers) == 0 {
		covered, err := diagramFill(s, 0, len(s))
		if err != nil {
			return Set[uint8]{}, err
		}
		if covered {
			return NewFull[uint8]().Set(), nil
		}
		return NewEmpty[uint8]().Set(), nil
	}

	gaps := make([]diagramGap, 0, len(markers))
	for i, from := range markers {
		to := markers[(i+1)%len(markers)]
		covered, err := diagramGapFill(s, from, to)
		if err != nil {
			return Set[uint8]{}, err
		}
		gaps = append(gaps, diagramGap{from: from, to: to, covered: covered})
	}

	var out []Wrange[uint8]
	lastCovered := gaps[len(gaps)-1].covered
	for _, g := range gaps {
		low, high := diagramBound(s, g.from), diagramBound(s, g.to)
		switch {
		case g.covered && g.from < g.to:
			out = append(out, convergent(low, high))
		case g.covered:
			// wraps, possibly all the way round onto the same marker
			out = append(out, divergent(low, high))
		case !lastCovered:
			// a marker with nothing on either side
			out = append(out, convergent(low, low))
		}
		lastCovered = g.covered
	}
	return SetOf(out...), nil
}

// ParseDiagram returns the single range drawn by s.
func ParseDiagram(s string) (Wrange[uint8], error) {
	set, err := ParseDiagramSet(s)
	if err != nil {
		return Wrange[uint8]{}, err
	}
	if set.Len() != 1 {
		return Wrange[uint8]{}, fmt.Errorf("%w: expected one range, got %d (too many markers): |%s|", ErrMalformedDiagram, set.Len(), s)
	}
	return set.members[0], nil
}

func MustParseDiagram(s string) Wrange[uint8] {
	w, err := ParseDiagram(s)
	if err != nil {
		panic(err)
	}
	return w
}

func MustParseDiagramSet(s string) Set[uint8] {
	set, err := ParseDiagramSet(s)
	if err != nil {
		panic(err)
	}
	return set
}

func diagramBound(s string, i int) Bound[uint8] {
	if s[i] == 'o' {
		return NewInclusive(uint8(i))
	}
	return NewExclusive(uint8(i))
}

// diagramGapFill tells whether the gap between the markers at from and to is
// covered. The gap wraps when to is not after from.
func diagramGapFill(s string, from, to int) (bool, error) {
	if from < to {
		return diagramFill(s, from+1, to)
	}
	end, err := diagramFill(s, from+1, len(s))
	if err != nil {
		return false, err
	}
	start, err := diagramFill(s, 0, to)
	if err != nil {
		return false, err
	}
	switch {
	case from == len(s)-1:
		return start, nil
	case to == 0:
		return end, nil
	case start == end:
		return start, nil
	}
	return false, fmt.Errorf("%w: the start and the end of the line must both be covered or both be uncovered: |%s|", ErrMalformedDiagram, s)
}

// diagramFill tells whether s[begin:end] is all dashes (covered) or all
// spaces. An empty gap counts as covered.
func diagramFill(s string, begin, end int) (bool, error) {
	gap := s[begin:end]
	switch {
	case strings.Trim(gap, "-") == "":
		return true, nil
	case strings.Trim(gap, " ") == "":
		return false, nil
	}
	return false, fmt.Errorf("%w: columns %d to %d must be all spaces or all dashes: |%s|", ErrMalformedDiagram, begin, end, s)
}
