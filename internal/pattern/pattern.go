// Package pattern implements the search and replace primitives: ASCII
// case-insensitive substring search, bounded literal find/replace on one
// line, and the `/old/new/[g]` and `/text/` spec grammars.
package pattern

import (
	"errors"
	"strings"
)

// replaceLimit caps replacements within a single line so a replacement text
// containing the search text cannot rewrite forever.
const replaceLimit = 1024

// ErrBadSpec is returned when a delimited pattern spec is malformed, i.e. a
// delimiter is opened but never closed.
var ErrBadSpec = errors.New("pattern: bad spec")

// IndexFold returns the index of the first ASCII case-insensitive match of
// needle in hay, or -1. The empty needle matches at index 0; search-for-
// nothing is found-everywhere-at-start, kept for compatibility.
func IndexFold(hay, needle string) int {
	if len(needle) == 0 {
		return 0
	}
	if len(needle) > len(hay) {
		return -1
	}
	for i := 0; i+len(needle) <= len(hay); i++ {
		j := 0
		for j < len(needle) && lower(hay[i+j]) == lower(needle[j]) {
			j++
		}
		if j == len(needle) {
			return i
		}
	}
	return -1
}

// MatchFold reports whether needle occurs in hay, ignoring ASCII case.
func MatchFold(hay, needle string) bool {
	return IndexFold(hay, needle) >= 0
}

// ReplaceInLine replaces case-sensitive literal occurrences of old in line
// with new, scanning forward past each splice. Without global it stops after
// one replacement. A splice whose result would exceed maxLen stops the scan,
// keeping prior successful edits. The empty old text never matches. It
// returns the rewritten line and the number of replacements made.
func ReplaceInLine(line, old, new string, global bool, maxLen int) (string, int) {
	if old == "" {
		return line, 0
	}

	made := 0
	from := 0
	for made < replaceLimit {
		i := strings.Index(line[from:], old)
		if i < 0 {
			break
		}
		at := from + i

		if len(line)-len(old)+len(new) > maxLen {
			break
		}

		line = line[:at] + new + line[at+len(old):]
		from = at + len(new)
		made++

		if !global {
			break
		}
	}

	return line, made
}

// ReplaceSpec is a parsed `/old/new/[g]` replacement spec.
type ReplaceSpec struct {
	Old    string
	New    string
	Global bool
}

// ParseReplaceSpec parses `/old/new/` with an optional trailing
// case-insensitive `g` flag. The middle delimiter is shared: exactly three
// slashes bound the two segments.
func ParseReplaceSpec(spec string) (ReplaceSpec, error) {
	s := strings.TrimLeft(spec, " \t")
	if !strings.HasPrefix(s, "/") {
		return ReplaceSpec{}, ErrBadSpec
	}

	parts := strings.SplitN(s[1:], "/", 3)
	if len(parts) < 3 {
		return ReplaceSpec{}, ErrBadSpec
	}

	flag := strings.TrimSpace(parts[2])
	global := len(flag) > 0 && (flag[0] == 'g' || flag[0] == 'G')

	return ReplaceSpec{Old: parts[0], New: parts[1], Global: global}, nil
}

// ParseSearchSpec parses a search pattern: either `/text/`-delimited or a
// bare trailing token. Only an opened-but-unclosed delimiter is an error.
func ParseSearchSpec(spec string) (string, error) {
	s := strings.TrimLeft(spec, " \t")

	if strings.HasPrefix(s, "/") {
		text, _, ok := strings.Cut(s[1:], "/")
		if !ok {
			return "", ErrBadSpec
		}
		return text, nil
	}

	return s, nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
