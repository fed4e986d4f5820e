package wrange

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ParseRange parses a range written as "empty", "full" or as an interval with
// "[" or "]" for inclusive and "(" or ")" for exclusive bounds, e.g. "[2,6)".
// A low value greater than the high value wraps: "[22,2]".
func ParseRange[T constraints.Integer](s string) (Wrange[T], error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "empty":
		return NewEmpty[T](), nil
	case "full":
		return NewFull[T](), nil
	}
	if len(s) < 2 {
		return Wrange[T]{}, fmt.Errorf("invalid range %q", s)
	}

	var low, high Bound[T]
	open, closing := s[0], s[len(s)-1]
	if open != '[' && open != '(' {
		return Wrange[T]{}, fmt.Errorf("invalid range %q: must start with '[' or '('", s)
	}
	if closing != ']' && closing != ')' {
		return Wrange[T]{}, fmt.Errorf("invalid range %q: must end with ']' or ')'", s)
	}
	c := strings.IndexByte(s, ',')
	if c == -1 {
		return Wrange[T]{}, fmt.Errorf("no comma in range %q", s)
	}
	from, err := parseValue[T](s[1:c])
	if err != nil {
		return Wrange[T]{}, fmt.Errorf("invalid low value in range %q: %w", s, err)
	}
	to, err := parseValue[T](s[c+1 : len(s)-1])
	if err != nil {
		return Wrange[T]{}, fmt.Errorf("invalid high value in range %q: %w", s, err)
	}

	low, high = NewExclusive(from), NewExclusive(to)
	if open == '[' {
		low = NewInclusive(from)
	}
	if closing == ']' {
		high = NewInclusive(to)
	}
	return New(low, high), nil
}

// ParseSet parses ranges separated by commas or spaces, optionally enclosed
// in braces: "{[0,5], [8,10]}".
func ParseSet[T constraints.Integer](s string) (Set[T], error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") {
		if !strings.HasSuffix(s, "}") {
			return Set[T]{}, fmt.Errorf("invalid set %q: missing closing brace", s)
		}
		s = s[1 : len(s)-1]
	}

	var out []Wrange[T]
	for {
		s = strings.TrimLeft(s, ", \t")
		if s == "" {
			return SetOf(out...), nil
		}
		var tok string
		switch s[0] {
		case '[', '(':
			end := strings.IndexAny(s, "])")
			if end == -1 {
				return Set[T]{}, fmt.Errorf("invalid range %q: missing closing bracket", s)
			}
			tok, s = s[:end+1], s[end+1:]
		default:
			end := strings.IndexAny(s, ", \t")
			if end == -1 {
				end = len(s)
			}
			tok, s = s[:end], s[end:]
		}
		w, err := ParseRange[T](tok)
		if err != nil {
			return Set[T]{}, err
		}
		out = append(out, w)
	}
}

// ParseValue parses a single domain value.
func ParseValue[T constraints.Integer](s string) (T, error) {
	return parseValue[T](s)
}

func parseValue[T constraints.Integer](s string) (T, error) {
	s = strings.TrimSpace(s)
	var zero T
	if zero-1 < zero {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, err
		}
		if int64(T(v)) != v {
			return zero, fmt.Errorf("value %d out of range", v)
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return zero, err
	}
	if uint64(T(v)) != v {
		return zero, fmt.Errorf("value %d out of range", v)
	}
	return T(v), nil
}
