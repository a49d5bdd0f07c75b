package textrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParse_Grammar(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		count int
		want  Range
	}{
		{"empty selects whole buffer", "", 10, Range{1, 10}},
		{"whitespace only", "   ", 10, Range{1, 10}},
		{"single number", "5", 10, Range{5, 5}},
		{"pair", "2,7", 10, Range{2, 7}},
		{"pair with spaces", "  2 , 7 ", 10, Range{2, 7}},
		{"leading comma", ",4", 10, Range{1, 4}},
		{"leading comma no number", ",", 10, Range{1, 10}},
		{"leading comma junk defaults to count", ",xyz", 10, Range{1, 10}},
		{"trailing comma defaults to count", "3,", 10, Range{3, 10}},
		{"zero start defaults to 1", "0,4", 10, Range{1, 4}},
		{"zero end defaults to count", "3,0", 10, Range{3, 10}},
		{"trailing junk after number ignored", "5 extra", 10, Range{5, 5}},
		{"nonnumeric second endpoint defaults", "3,abc", 10, Range{3, 10}},
		{"empty buffer whole range", "", 0, Range{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text, tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_BadLeadingToken(t *testing.T) {
	for _, text := range []string{"x", "/old/new/", "-3", "a,b"} {
		_, err := Parse(text, 10)
		require.ErrorIs(t, err, ErrBadRange, "input %q", text)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		in    Range
		count int
		want  Range
	}{
		{"identity in bounds", Range{2, 5}, 10, Range{2, 5}},
		{"low start raised", Range{0, 5}, 10, Range{1, 5}},
		{"high end lowered", Range{2, 99}, 10, Range{2, 10}},
		{"zero end coerced to count", Range{2, 0}, 10, Range{2, 10}},
		{"reversed pair swapped", Range{7, 3}, 10, Range{3, 7}},
		{"start past end collapses to last line", Range{50, 50}, 3, Range{3, 3}},
		{"single past end of one-line buffer", Range{2, 2}, 1, Range{1, 1}},
		{"reversed with start past end", Range{50, 2}, 3, Range{2, 3}},
		{"empty buffer never swaps", Range{1, 0}, 0, Range{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamp(tt.count))
		})
	}
}

func TestClamp_EmptyBufferIteratesNothing(t *testing.T) {
	r := Range{A: 5, B: 9}.Clamp(0)
	assert.True(t, r.Empty())
}

// TestParseThenClamp_Invariant checks the resolver property: for any text
// input that parses, clamping yields 1 <= A <= B <= count whenever the
// buffer is non-empty.
func TestParseThenClamp_Invariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 5000).Draw(t, "count")
		text := rapid.StringMatching(`[ \t]*([0-9]{0,4})?[ \t]*(,[ \t]*[0-9]{0,4})?[ \t]*`).Draw(t, "text")

		parsed, err := Parse(text, count)
		if err != nil {
			t.Skip("unparseable input")
		}
		r := parsed.Clamp(count)

		if r.A < 1 || r.A > r.B || r.B > count {
			t.Fatalf("invariant violated: %+v for count=%d text=%q", r, count, text)
		}
	})
}
