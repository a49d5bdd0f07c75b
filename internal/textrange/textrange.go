// Package textrange parses and normalizes the 1-based inclusive line ranges
// of the command language: `` (whole buffer), `,Y`, `X`, and `X,Y`.
package textrange

import "errors"

// ErrBadRange is returned when range text starts with a token that is
// neither a digit nor a comma.
var ErrBadRange = errors.New("textrange: bad range")

// Range is a pair of 1-based inclusive line positions. A raw parsed range is
// advisory; commands iterate over the Clamp result only.
type Range struct {
	A int
	B int
}

// Parse resolves range text against the current buffer size. Missing or
// non-positive endpoints default: A to 1, B to count. Trailing text after a
// parsed number is ignored, as in the classic grammar.
func Parse(text string, count int) (Range, error) {
	s := skipSpace(text)

	if s == "" {
		return Range{A: 1, B: count}, nil
	}

	if s[0] == ',' {
		y, _ := leadingInt(skipSpace(s[1:]))
		return Range{A: 1, B: defaultTo(y, count)}, nil
	}

	if !isDigit(s[0]) {
		return Range{}, ErrBadRange
	}

	x, rest := leadingInt(s)
	rest = skipSpace(rest)

	y := x
	if rest != "" && rest[0] == ',' {
		rest = skipSpace(rest[1:])
		if rest == "" {
			y = count
		} else {
			y, _ = leadingInt(rest)
		}
	}

	return Range{A: defaultTo(x, 1), B: defaultTo(y, count)}, nil
}

// Clamp normalizes a range for iteration: A is raised to 1, B outside
// [1, count] is coerced to count, a reversed pair is swapped when the
// buffer is non-empty, and both endpoints end up within [1, count] so
// callers can iterate without bounds checks. With count == 0 the result
// iterates over nothing.
func (r Range) Clamp(count int) Range {
	if r.A < 1 {
		r.A = 1
	}
	if r.B < 1 || r.B > count {
		r.B = count
	}
	if r.A > r.B && count > 0 {
		r.A, r.B = r.B, r.A
	}
	// A start past the buffer end lands here as B after the swap.
	if r.B > count {
		r.B = count
	}
	return r
}

// Empty reports whether the range selects no lines.
func (r Range) Empty() bool { return r.A > r.B }

func defaultTo(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func skipSpace(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	return s
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// leadingInt parses the run of digits at the start of s, returning 0 when
// there is none, and the remainder of the string.
func leadingInt(s string) (int, string) {
	n := 0
	i := 0
	for i < len(s) && isDigit(s[i]) {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return n, s[i:]
}
