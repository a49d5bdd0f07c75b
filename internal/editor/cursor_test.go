package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evilined/internal/buffer"
)

// ============================================================================
// Character edits
// ============================================================================

func TestInsertChar_SplicesAtColumn(t *testing.T) {
	s := newTestSession("helo")
	s.cursor = Cursor{Row: 0, Col: 3}

	s.InsertChar('l')

	assert.Equal(t, "hello", s.Buffer().Line(0))
	assert.Equal(t, 4, s.Cursor().Col)
}

func TestInsertChar_OnEmptyBufferCreatesRow(t *testing.T) {
	s := newTestSession()

	s.InsertChar('a')
	s.InsertChar('b')

	assert.Equal(t, []string{"ab"}, s.Buffer().Lines())
	assert.Equal(t, Cursor{Row: 0, Col: 2}, s.Cursor())
}

func TestInsertChar_RejectedAtMaxLength(t *testing.T) {
	s := NewSession(buffer.NewWithLimits(0, 5))
	require.NoError(t, s.Buffer().Append("abcde"))
	s.cursor = Cursor{Row: 0, Col: 5}

	s.InsertChar('x')

	assert.Equal(t, "abcde", s.Buffer().Line(0))
	assert.Equal(t, 5, s.Cursor().Col)
}

func TestInsertChar_ClampsStaleColumn(t *testing.T) {
	s := newTestSession("ab")
	s.cursor = Cursor{Row: 0, Col: 40}

	s.InsertChar('c')

	assert.Equal(t, "abc", s.Buffer().Line(0))
	assert.Equal(t, 3, s.Cursor().Col)
}

func TestDeleteChar_UnderCursor(t *testing.T) {
	s := newTestSession("abc")
	s.cursor = Cursor{Row: 0, Col: 1}

	s.DeleteChar()

	assert.Equal(t, "ac", s.Buffer().Line(0))
	assert.Equal(t, 1, s.Cursor().Col)
}

func TestDeleteChar_AtEndOfLineJoinsNext(t *testing.T) {
	s := newTestSession("ab", "cd")
	s.cursor = Cursor{Row: 0, Col: 2}

	s.DeleteChar()

	assert.Equal(t, []string{"abcd"}, s.Buffer().Lines())
}

func TestDeleteChar_JoinRejectedWhenTooLong(t *testing.T) {
	s := NewSession(buffer.NewWithLimits(0, 5))
	require.NoError(t, s.Buffer().Append("abc"))
	require.NoError(t, s.Buffer().Append("def"))
	s.cursor = Cursor{Row: 0, Col: 3}

	s.DeleteChar()

	assert.Equal(t, []string{"abc", "def"}, s.Buffer().Lines())
}

func TestDeleteChar_AtEndOfLastLineNoop(t *testing.T) {
	s := newTestSession("ab")
	s.cursor = Cursor{Row: 0, Col: 2}

	s.DeleteChar()

	assert.Equal(t, []string{"ab"}, s.Buffer().Lines())
}

func TestBackspace_WithinLine(t *testing.T) {
	s := newTestSession("abc")
	s.cursor = Cursor{Row: 0, Col: 2}

	s.Backspace()

	assert.Equal(t, "ac", s.Buffer().Line(0))
	assert.Equal(t, 1, s.Cursor().Col)
}

func TestBackspace_AtColumnZeroJoinsPrevious(t *testing.T) {
	s := newTestSession("ab", "cd")
	s.cursor = Cursor{Row: 1, Col: 0}

	s.Backspace()

	assert.Equal(t, []string{"abcd"}, s.Buffer().Lines())
	assert.Equal(t, Cursor{Row: 0, Col: 2}, s.Cursor())
}

func TestBackspace_AtOriginNoop(t *testing.T) {
	s := newTestSession("ab")

	s.Backspace()

	assert.Equal(t, []string{"ab"}, s.Buffer().Lines())
	assert.Equal(t, Cursor{}, s.Cursor())
}

func TestInsertNewline_SplitsLine(t *testing.T) {
	s := newTestSession("hello world")
	s.cursor = Cursor{Row: 0, Col: 5}

	s.InsertNewline()

	assert.Equal(t, []string{"hello", " world"}, s.Buffer().Lines())
	assert.Equal(t, Cursor{Row: 1, Col: 0}, s.Cursor())
}

func TestInsertNewline_AtEndOpensEmptyLine(t *testing.T) {
	s := newTestSession("ab")
	s.cursor = Cursor{Row: 0, Col: 2}

	s.InsertNewline()

	assert.Equal(t, []string{"ab", ""}, s.Buffer().Lines())
}

func TestInsertNewline_AtCapacityNoop(t *testing.T) {
	s := NewSession(buffer.NewWithLimits(2, 0))
	require.NoError(t, s.Buffer().Append("a"))
	require.NoError(t, s.Buffer().Append("b"))
	s.cursor = Cursor{Row: 0, Col: 1}

	s.InsertNewline()

	assert.Equal(t, []string{"a", "b"}, s.Buffer().Lines())
	assert.Equal(t, Cursor{Row: 0, Col: 1}, s.Cursor())
}

func TestNewlineThenBackspace_Restores(t *testing.T) {
	s := newTestSession("hello world")
	s.cursor = Cursor{Row: 0, Col: 5}

	s.InsertNewline()
	s.Backspace()

	assert.Equal(t, []string{"hello world"}, s.Buffer().Lines())
	assert.Equal(t, Cursor{Row: 0, Col: 5}, s.Cursor())
}

// ============================================================================
// Motions
// ============================================================================

func TestMoveUpDown_ClampColumn(t *testing.T) {
	s := newTestSession("long line here", "ab", "another long one")
	s.cursor = Cursor{Row: 0, Col: 10}

	s.MoveDown()
	assert.Equal(t, Cursor{Row: 1, Col: 2}, s.Cursor())

	s.MoveDown()
	assert.Equal(t, Cursor{Row: 2, Col: 2}, s.Cursor())

	s.MoveDown() // already at last row
	assert.Equal(t, 2, s.Cursor().Row)

	s.MoveUp()
	s.MoveUp()
	s.MoveUp() // already at first row
	assert.Equal(t, 0, s.Cursor().Row)
}

func TestMoveLeftRight_WrapAcrossLines(t *testing.T) {
	s := newTestSession("ab", "cd")
	s.cursor = Cursor{Row: 1, Col: 0}

	s.MoveLeft()
	assert.Equal(t, Cursor{Row: 0, Col: 2}, s.Cursor())

	s.MoveRight()
	assert.Equal(t, Cursor{Row: 1, Col: 0}, s.Cursor())

	s.MoveRight()
	s.MoveRight()
	s.MoveRight() // end of buffer
	assert.Equal(t, Cursor{Row: 1, Col: 2}, s.Cursor())
}

func TestMoveLineStartEnd(t *testing.T) {
	s := newTestSession("content")
	s.cursor = Cursor{Row: 0, Col: 3}

	s.MoveLineEnd()
	assert.Equal(t, 7, s.Cursor().Col)

	s.MoveLineStart()
	assert.Equal(t, 0, s.Cursor().Col)
}

func TestPageUpDown_AlignViewTop(t *testing.T) {
	var lines []string
	for i := 0; i < 50; i++ {
		lines = append(lines, strings.Repeat("x", i%5))
	}
	s := newTestSession(lines...)

	s.PageDown(23)
	assert.Equal(t, 23, s.Cursor().Row)
	assert.Equal(t, 23, s.Cursor().Top)

	s.PageDown(23)
	s.PageDown(23) // clamps to last row
	assert.Equal(t, 49, s.Cursor().Row)

	s.PageUp(23)
	assert.Equal(t, 26, s.Cursor().Row)
	assert.Equal(t, 26, s.Cursor().Top)

	s.PageUp(100)
	assert.Equal(t, Cursor{Row: 0, Col: 0, Top: 0}, s.Cursor())
}

func TestResetCursor(t *testing.T) {
	s := newTestSession("a", "b")
	s.cursor = Cursor{Row: 1, Col: 1, Top: 1}

	s.ResetCursor()

	assert.Equal(t, Cursor{}, s.Cursor())
}
