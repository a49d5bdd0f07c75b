// Package buffer implements the line store: an ordered, position-addressed
// collection of text lines. Lines are addressed by 0-based index here; the
// 1-based numbering of the command language lives in the editor layer.
//
// The store carries two policy limits: a soft line-count capacity and a
// maximum line length. Both are configurable at construction and both reject
// growth rather than truncating content.
package buffer

import "errors"

// Default limits, matching the classic editor's fixed bounds.
const (
	DefaultMaxLines   = 1200
	DefaultMaxLineLen = 255
)

var (
	// ErrCapacity is returned when an operation would grow the store past
	// its line capacity.
	ErrCapacity = errors.New("buffer: line capacity exceeded")

	// ErrLineTooLong is returned when a line's content would exceed the
	// maximum line length.
	ErrLineTooLong = errors.New("buffer: line exceeds maximum length")

	// ErrBadIndex is returned when a line index is outside the occupied
	// range of the store.
	ErrBadIndex = errors.New("buffer: line index out of range")
)

// Buffer is the ordered collection holding all text lines of the document.
type Buffer struct {
	lines      []string
	maxLines   int
	maxLineLen int
}

// New creates an empty buffer with the default limits.
func New() *Buffer {
	return NewWithLimits(DefaultMaxLines, DefaultMaxLineLen)
}

// NewWithLimits creates an empty buffer with explicit limits. Non-positive
// limits fall back to the defaults.
func NewWithLimits(maxLines, maxLineLen int) *Buffer {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	if maxLineLen <= 0 {
		maxLineLen = DefaultMaxLineLen
	}
	return &Buffer{
		maxLines:   maxLines,
		maxLineLen: maxLineLen,
	}
}

// Len returns the number of lines in use.
func (b *Buffer) Len() int { return len(b.lines) }

// MaxLines returns the line-count capacity.
func (b *Buffer) MaxLines() int { return b.maxLines }

// MaxLineLen returns the maximum permitted line length.
func (b *Buffer) MaxLineLen() int { return b.maxLineLen }

// Line returns the content at idx, or the empty string when idx is outside
// the occupied range. Callers must re-fetch after any mutation since indices
// shift on insert and delete.
func (b *Buffer) Line(idx int) string {
	if idx < 0 || idx >= len(b.lines) {
		return ""
	}
	return b.lines[idx]
}

// Lines returns a copy of the current content.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// MakeRoom opens n empty slots at pos, shifting subsequent lines forward.
// It fails without mutation when the result would exceed capacity. pos is
// clamped into [0, Len].
func (b *Buffer) MakeRoom(pos, n int) error {
	if n <= 0 {
		return nil
	}
	if len(b.lines)+n > b.maxLines {
		return ErrCapacity
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.lines) {
		pos = len(b.lines)
	}
	blank := make([]string, n)
	b.lines = append(b.lines[:pos], append(blank, b.lines[pos:]...)...)
	return nil
}

// CloseGap removes the n lines starting at pos, shifting subsequent lines
// backward. Out-of-range spans are clamped; removing nothing is a no-op.
func (b *Buffer) CloseGap(pos, n int) {
	if pos < 0 {
		n += pos
		pos = 0
	}
	if pos >= len(b.lines) || n <= 0 {
		return
	}
	if pos+n > len(b.lines) {
		n = len(b.lines) - pos
	}
	b.lines = append(b.lines[:pos], b.lines[pos+n:]...)
}

// SetLine replaces the content at idx. The prior content is kept when the
// replacement is rejected for length.
func (b *Buffer) SetLine(idx int, text string) error {
	if idx < 0 || idx >= len(b.lines) {
		return ErrBadIndex
	}
	if len(text) > b.maxLineLen {
		return ErrLineTooLong
	}
	b.lines[idx] = text
	return nil
}

// Append adds a line at the end of the store. A rejected line leaves the
// store unchanged.
func (b *Buffer) Append(text string) error {
	if err := b.MakeRoom(len(b.lines), 1); err != nil {
		return err
	}
	if err := b.SetLine(len(b.lines)-1, text); err != nil {
		b.CloseGap(len(b.lines)-1, 1)
		return err
	}
	return nil
}

// EnsureExists grows the store with empty lines up to and including idx, so
// arbitrary cursor rows are always addressable. Growth stops silently at
// capacity.
func (b *Buffer) EnsureExists(idx int) {
	for len(b.lines) <= idx {
		if len(b.lines) >= b.maxLines {
			return
		}
		b.lines = append(b.lines, "")
	}
}

// ReplaceAll atomically replaces the entire content. The incoming lines are
// validated against both limits before anything is committed, so a failed
// replace leaves the store untouched.
func (b *Buffer) ReplaceAll(lines []string) error {
	if len(lines) > b.maxLines {
		return ErrCapacity
	}
	for _, ln := range lines {
		if len(ln) > b.maxLineLen {
			return ErrLineTooLong
		}
	}
	next := make([]string, len(lines))
	copy(next, lines)
	b.lines = next
	return nil
}

// Clear discards all content.
func (b *Buffer) Clear() {
	b.lines = nil
}
