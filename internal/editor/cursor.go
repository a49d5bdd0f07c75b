package editor

// Cursor is the character-level edit position used by visual mode: a 0-based
// row, a 0-based column, and the first visible row for the renderer.
type Cursor struct {
	Row int
	Col int
	Top int
}

// Cursor returns the current cursor state.
func (s *Session) Cursor() Cursor { return s.cursor }

// SetTop records the first visible row for the rendering collaborator.
func (s *Session) SetTop(top int) { s.cursor.Top = top }

// ResetCursor moves the cursor to (0,0) and resets the view top. Visual mode
// calls this on entry.
func (s *Session) ResetCursor() {
	s.cursor = Cursor{}
}

// EnsureRow grows the buffer with empty lines so row is addressable.
func (s *Session) EnsureRow(row int) {
	s.buf.EnsureExists(row)
}

// currentLine fetches the cursor row's content, clamping a stale column into
// [0, len(line)].
func (s *Session) currentLine() string {
	line := s.buf.Line(s.cursor.Row)
	if s.cursor.Col > len(line) {
		s.cursor.Col = len(line)
	}
	return line
}

// InsertChar splices c into the current line at the cursor column and
// advances the column. A line already at maximum length rejects the insert.
func (s *Session) InsertChar(c byte) {
	s.EnsureRow(s.cursor.Row)
	line := s.currentLine()

	if len(line) >= s.buf.MaxLineLen() {
		return
	}

	col := s.cursor.Col
	if s.buf.SetLine(s.cursor.Row, line[:col]+string(c)+line[col:]) != nil {
		return
	}
	s.cursor.Col++
}

// DeleteChar removes the character under the cursor. At end of line it joins
// the following line onto the current one, rejecting the join when the
// combined length would exceed the maximum.
func (s *Session) DeleteChar() {
	if s.cursor.Row >= s.buf.Len() {
		return
	}
	line := s.buf.Line(s.cursor.Row)

	if s.cursor.Col >= len(line) {
		next := s.cursor.Row + 1
		if next >= s.buf.Len() {
			return
		}
		joined := line + s.buf.Line(next)
		if len(joined) > s.buf.MaxLineLen() {
			return
		}
		if s.buf.SetLine(s.cursor.Row, joined) != nil {
			return
		}
		s.buf.CloseGap(next, 1)
		return
	}

	_ = s.buf.SetLine(s.cursor.Row, line[:s.cursor.Col]+line[s.cursor.Col+1:])
}

// Backspace moves left and deletes; at column 0 it joins onto the previous
// line, leaving the cursor at the join point.
func (s *Session) Backspace() {
	if s.cursor.Col > 0 {
		s.cursor.Col--
		s.DeleteChar()
		return
	}
	if s.cursor.Row > 0 {
		s.cursor.Row--
		s.cursor.Col = len(s.buf.Line(s.cursor.Row))
		s.DeleteChar()
	}
}

// InsertNewline splits the current line at the cursor column, truncating the
// first part in place and inserting the remainder as a new line. The cursor
// moves to the start of the new line. Splitting fails silently at capacity.
func (s *Session) InsertNewline() {
	s.EnsureRow(s.cursor.Row)
	line := s.currentLine()

	if s.buf.MakeRoom(s.cursor.Row+1, 1) != nil {
		return
	}

	col := s.cursor.Col
	_ = s.buf.SetLine(s.cursor.Row, line[:col])
	_ = s.buf.SetLine(s.cursor.Row+1, line[col:])

	s.cursor.Row++
	s.cursor.Col = 0
}

// ============================================================================
// Motion helpers for the visual collaborator. These never mutate content.
// ============================================================================

// MoveUp moves one row up, clamping the column to the new line's length.
func (s *Session) MoveUp() {
	if s.cursor.Row > 0 {
		s.cursor.Row--
		s.clampCol()
	}
}

// MoveDown moves one row down within the buffer, clamping the column.
func (s *Session) MoveDown() {
	if s.cursor.Row < s.buf.Len()-1 {
		s.cursor.Row++
		s.clampCol()
	}
}

// MoveLeft moves one column left, wrapping to the end of the previous line.
func (s *Session) MoveLeft() {
	if s.cursor.Col > 0 {
		s.cursor.Col--
		return
	}
	if s.cursor.Row > 0 {
		s.cursor.Row--
		s.cursor.Col = len(s.buf.Line(s.cursor.Row))
	}
}

// MoveRight moves one column right, wrapping to the start of the next line.
func (s *Session) MoveRight() {
	if s.cursor.Row >= s.buf.Len() {
		return
	}
	if s.cursor.Col < len(s.buf.Line(s.cursor.Row)) {
		s.cursor.Col++
		return
	}
	if s.cursor.Row < s.buf.Len()-1 {
		s.cursor.Row++
		s.cursor.Col = 0
	}
}

// MoveLineStart moves to column 0.
func (s *Session) MoveLineStart() { s.cursor.Col = 0 }

// MoveLineEnd moves to the end of the current line.
func (s *Session) MoveLineEnd() {
	if s.cursor.Row < s.buf.Len() {
		s.cursor.Col = len(s.buf.Line(s.cursor.Row))
	}
}

// PageUp moves the cursor up by page rows and aligns the view top to it.
func (s *Session) PageUp(page int) {
	s.cursor.Row -= page
	if s.cursor.Row < 0 {
		s.cursor.Row = 0
	}
	s.cursor.Top = s.cursor.Row
	s.clampCol()
}

// PageDown moves the cursor down by page rows and aligns the view top to it.
func (s *Session) PageDown(page int) {
	s.cursor.Row += page
	if s.cursor.Row >= s.buf.Len() {
		s.cursor.Row = s.buf.Len() - 1
	}
	if s.cursor.Row < 0 {
		s.cursor.Row = 0
	}
	s.cursor.Top = s.cursor.Row
	s.clampCol()
}

func (s *Session) clampCol() {
	if n := len(s.buf.Line(s.cursor.Row)); s.cursor.Col > n {
		s.cursor.Col = n
	}
}
