// Package editor implements the buffer command engine and the character
// cursor model on top of the line store. One Session owns everything the
// classic editor kept in globals: the buffer, the current file name, the
// last-used range, and the cursor.
package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"evilined/internal/buffer"
	"evilined/internal/log"
	"evilined/internal/pattern"
	"evilined/internal/textrange"
)

var (
	// ErrBadLine is returned when a single-line command addresses a line
	// outside [1, count].
	ErrBadLine = errors.New("editor: bad line")

	// ErrNoFileName is returned by Save when no target name is given and
	// none is recorded.
	ErrNoFileName = errors.New("editor: no file name")
)

// LineReader supplies one line of command input, reporting false at end of
// input. Insert and Edit draw their text through it.
type LineReader func() (string, bool)

// Session is a single editing session. All operations are synchronous; a
// command runs to completion before the next is accepted.
type Session struct {
	buf      *buffer.Buffer
	fileName string
	last     textrange.Range
	cursor   Cursor
}

// NewSession creates a session around the given line store.
func NewSession(buf *buffer.Buffer) *Session {
	return &Session{buf: buf, last: textrange.Range{A: 1, B: 0}}
}

// Buffer exposes the line store for read access by rendering collaborators.
func (s *Session) Buffer() *buffer.Buffer { return s.buf }

// FileName returns the currently recorded file name, or "".
func (s *Session) FileName() string { return s.fileName }

// SetFileName records a file name without touching the buffer. The REPL uses
// it when a start-up load fails but the name should stick.
func (s *Session) SetFileName(name string) { s.fileName = name }

// LastRange returns the range used by the most recent ranged command. It is
// a display aid only; commands always compute their own defaults.
func (s *Session) LastRange() textrange.Range { return s.last }

// List writes each in-range line as `NNNNN: content` using the 0-based line
// index, or `(empty)` when the buffer holds nothing.
func (s *Session) List(w io.Writer, r textrange.Range) {
	r = r.Clamp(s.buf.Len())

	if s.buf.Len() == 0 {
		fmt.Fprintln(w, "(empty)")
		return
	}

	for i := r.A; i <= r.B; i++ {
		fmt.Fprintf(w, "%05d: %s\n", i-1, s.buf.Line(i-1))
	}

	s.last = r
}

// Insert splices lines read from read at position at (1-based, clamped into
// [1, count+1]) until a line containing exactly "." or end of input. Lines
// accepted before a capacity failure stay committed; the failure is returned.
// It returns the number of lines inserted.
func (s *Session) Insert(w io.Writer, at int, read LineReader) (int, error) {
	n := at
	if n < 1 {
		n = 1
	}
	if n > s.buf.Len()+1 {
		n = s.buf.Len() + 1
	}

	fmt.Fprintf(w, "-- Insert at  Line %05d  --\n", n-1)

	pos := n - 1
	inserted := 0
	var failure error

	for {
		fmt.Fprintf(w, "%05d: ", pos+1)

		line, ok := read()
		if !ok {
			break
		}
		if line == "." {
			break
		}

		if err := s.buf.MakeRoom(pos, 1); err != nil {
			failure = err
			break
		}
		if err := s.buf.SetLine(pos, line); err != nil {
			// A rejected line must not leave its blank slot behind.
			s.buf.CloseGap(pos, 1)
			failure = err
			break
		}

		pos++
		inserted++
	}

	s.last = textrange.Range{A: n, B: n - 1 + inserted}
	log.Debug(log.CatCmd, "insert", "at", n, "count", inserted)

	return inserted, failure
}

// Delete removes the in-range lines in one shift. An empty buffer or an
// empty clamped range is a no-op.
func (s *Session) Delete(r textrange.Range) {
	r = r.Clamp(s.buf.Len())

	if s.buf.Len() == 0 || r.A > r.B {
		return
	}

	n := r.B - r.A + 1
	s.buf.CloseGap(r.A-1, n)

	end := r.A
	if end > s.buf.Len() {
		end = s.buf.Len()
	}
	s.last = textrange.Range{A: r.A, B: end}
	log.Debug(log.CatCmd, "delete", "from", r.A, "to", r.B)
}

// Edit shows line n and installs one replacement line read from read. A
// position outside [1, count] fails with ErrBadLine; end of input leaves the
// line unchanged.
func (s *Session) Edit(w io.Writer, n int, read LineReader) error {
	if n < 1 || n > s.buf.Len() {
		return ErrBadLine
	}

	fmt.Fprintf(w, "%05d: %s\n", n-1, s.buf.Line(n-1))
	fmt.Fprintf(w, "%05d: ", n)

	line, ok := read()
	if !ok {
		return nil
	}

	if err := s.buf.SetLine(n-1, line); err != nil {
		return err
	}

	s.last = textrange.Range{A: n, B: n}
	return nil
}

// Replace applies a `/old/new/[g]` spec to every in-range line and reports
// the total replacement count. A malformed spec fails before any mutation.
func (s *Session) Replace(w io.Writer, r textrange.Range, spec string) (int, error) {
	rs, err := pattern.ParseReplaceSpec(spec)
	if err != nil {
		return 0, err
	}

	r = r.Clamp(s.buf.Len())

	total := 0
	for i := r.A; i <= r.B; i++ {
		line, n := pattern.ReplaceInLine(s.buf.Line(i-1), rs.Old, rs.New, rs.Global, s.buf.MaxLineLen())
		if n > 0 {
			if err := s.buf.SetLine(i-1, line); err != nil {
				return total, err
			}
			total += n
		}
	}

	fmt.Fprintf(w, "Replaced %d occurrence(s).\n", total)
	s.last = r
	log.Debug(log.CatCmd, "replace", "old", rs.Old, "new", rs.New, "global", rs.Global, "count", total)

	return total, nil
}

// Search writes every in-range line matching the spec case-insensitively,
// followed by a match count. The spec may be `/text/`-delimited or a bare
// trailing token; only an unclosed delimiter is an error.
func (s *Session) Search(w io.Writer, r textrange.Range, spec string) (int, error) {
	needle, err := pattern.ParseSearchSpec(spec)
	if err != nil {
		return 0, err
	}

	r = r.Clamp(s.buf.Len())

	hits := 0
	for i := r.A; i <= r.B; i++ {
		if pattern.MatchFold(s.buf.Line(i-1), needle) {
			fmt.Fprintf(w, "%05d: %s\n", i-1, s.buf.Line(i-1))
			hits++
		}
	}

	fmt.Fprintf(w, "-- %d match(es)\n", hits)
	s.last = r

	return hits, nil
}

// Load reads the named file and replaces the buffer with its lines. The new
// content is fully read and size-checked before commit, so a failed load
// leaves the prior content in place. On success the file name is recorded
// and the last-used range covers the whole buffer.
func (s *Session) Load(name string) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
		if len(lines) > s.buf.MaxLines() {
			return 0, fmt.Errorf("loading %s: %w", name, buffer.ErrCapacity)
		}
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("reading %s: %w", name, err)
	}

	if err := s.buf.ReplaceAll(lines); err != nil {
		return 0, fmt.Errorf("loading %s: %w", name, err)
	}

	s.fileName = name
	s.last = textrange.Range{A: 1, B: s.buf.Len()}
	log.Info(log.CatIO, "loaded file", "name", name, "lines", s.buf.Len())

	return s.buf.Len(), nil
}

// Save writes every line followed by a newline to name, or to the recorded
// file name when name is empty. The name is recorded only on success. It
// returns the number of lines written and the name used.
func (s *Session) Save(name string) (int, string, error) {
	if name == "" {
		name = s.fileName
	}
	if name == "" {
		return 0, "", ErrNoFileName
	}

	f, err := os.Create(name)
	if err != nil {
		return 0, name, fmt.Errorf("opening %s: %w", name, err)
	}

	w := bufio.NewWriter(f)
	for i := 0; i < s.buf.Len(); i++ {
		if _, err := w.WriteString(s.buf.Line(i) + "\n"); err != nil {
			f.Close()
			return 0, name, fmt.Errorf("writing %s: %w", name, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return 0, name, fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return 0, name, fmt.Errorf("closing %s: %w", name, err)
	}

	s.fileName = name
	log.Info(log.CatIO, "saved file", "name", name, "lines", s.buf.Len())

	return s.buf.Len(), name, nil
}

// Status writes the one-line buffer summary shown after every command.
func (s *Session) Status(w io.Writer) {
	name := s.fileName
	if name == "" {
		name = "(none)"
	}
	fmt.Fprintf(w, "Lines: %d  File: %s\n", s.buf.Len(), name)
}
