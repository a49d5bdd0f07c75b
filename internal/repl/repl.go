// Package repl implements the line-command read-eval-print loop: prompt,
// single-letter command dispatch, banner, help, and the status line printed
// after every command. All buffer semantics live in the editor package; the
// REPL only parses command lines and renders results.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"evilined/internal/buffer"
	"evilined/internal/editor"
	"evilined/internal/log"
	"evilined/internal/textrange"
)

// VisualFunc launches the fullscreen editor for the session and returns when
// the user leaves visual mode. It is injected so this package stays free of
// UI imports.
type VisualFunc func(*editor.Session) error

// REPL drives one interactive editing session over a line-oriented reader
// and writer.
type REPL struct {
	session *editor.Session
	in      *bufio.Scanner
	out     io.Writer
	visual  VisualFunc
	now     func() time.Time
}

// New creates a REPL for the session reading commands from in and writing
// to out.
func New(session *editor.Session, in io.Reader, out io.Writer) *REPL {
	sc := bufio.NewScanner(in)
	return &REPL{
		session: session,
		in:      sc,
		out:     out,
		now:     time.Now,
	}
}

// SetVisualFunc installs the visual-mode launcher. Without one, the V
// command reports that visual mode is unavailable.
func (r *REPL) SetVisualFunc(fn VisualFunc) { r.visual = fn }

// Run loads the optional initial file, prints the banner, and processes
// commands until Q or end of input. Errors never escape a command; each is
// reported as a `! ...` line and the loop continues.
func (r *REPL) Run(initialFile string) error {
	displayName := "(none)"
	if initialFile != "" {
		displayName = initialFile
		if _, err := r.session.Load(initialFile); err != nil {
			fmt.Fprintf(r.out, "! couldn't open '%s' (starting empty)\n", initialFile)
			r.session.SetFileName(initialFile)
		}
	}

	r.banner(displayName)
	r.session.Status(r.out)

	for {
		fmt.Fprint(r.out, "* ")

		line, ok := r.readLine()
		if !ok {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cmd := upper(line[0])
		rest := strings.TrimLeft(line[1:], " \t")

		if cmd == 'Q' {
			return nil
		}

		r.dispatch(cmd, rest)
		r.session.Status(r.out)
	}
}

func (r *REPL) dispatch(cmd byte, rest string) {
	count := r.session.Buffer().Len()

	switch cmd {
	case 'L':
		rng, err := textrange.Parse(rest, count)
		if err != nil {
			fmt.Fprintln(r.out, "! bad range")
			return
		}
		r.session.List(r.out, rng)

	case 'I':
		at := count + 1
		if rest != "" {
			at = leadingInt(rest)
		}
		if _, err := r.session.Insert(r.out, at, r.readLine); err != nil {
			r.report(err)
		}

	case 'D':
		rng, err := textrange.Parse(rest, count)
		if err != nil {
			fmt.Fprintln(r.out, "! need D a[,b]")
			return
		}
		r.session.Delete(rng)

	case 'E':
		if rest == "" {
			fmt.Fprintln(r.out, "! need E n")
			return
		}
		if err := r.session.Edit(r.out, leadingInt(rest), r.readLine); err != nil {
			r.report(err)
		}

	case 'R':
		rng, spec, err := splitRangeSpec(rest, count)
		if err != nil {
			fmt.Fprintln(r.out, "! bad range")
			return
		}
		if spec == "" {
			fmt.Fprintln(r.out, "! syntax: R a,b /old/new/[g]")
			return
		}
		if _, err := r.session.Replace(r.out, rng, spec); err != nil {
			fmt.Fprintln(r.out, "! syntax: R a,b /old/new/[g]")
		}

	case 'S':
		rng, spec, err := splitRangeSpec(rest, count)
		if err != nil {
			fmt.Fprintln(r.out, "! bad range")
			return
		}
		if spec == "" {
			// No delimiter anywhere: the whole rest is a bare pattern
			// searched over the full buffer.
			rng = textrange.Range{A: 1, B: count}
			spec = rest
		}
		if _, err := r.session.Search(r.out, rng, spec); err != nil {
			fmt.Fprintln(r.out, "! syntax: S a,b /text/")
		}

	case 'O':
		if rest == "" {
			fmt.Fprintln(r.out, "! need filename")
			return
		}
		n, err := r.session.Load(rest)
		if err != nil {
			fmt.Fprintln(r.out, "! open failed")
			log.ErrorErr(log.CatIO, "load failed", err, "name", rest)
			return
		}
		fmt.Fprintf(r.out, "-- loaded %d line(s)\n", n)

	case 'W':
		n, name, err := r.session.Save(rest)
		switch {
		case errors.Is(err, editor.ErrNoFileName):
			fmt.Fprintln(r.out, "! W needs filename (no current file)")
		case err != nil:
			fmt.Fprintln(r.out, "! write failed")
			log.ErrorErr(log.CatIO, "save failed", err, "name", name)
		default:
			fmt.Fprintf(r.out, "-- wrote %d line(s) to %s\n", n, name)
		}

	case 'V':
		if r.visual == nil {
			fmt.Fprintln(r.out, "! visual mode unavailable")
			return
		}
		if err := r.visual(r.session); err != nil {
			fmt.Fprintln(r.out, "! visual mode failed")
			log.ErrorErr(log.CatUI, "visual mode failed", err)
		}

	case 'P':
		// The loop prints status after every command, so P shows it twice.
		r.session.Status(r.out)

	case 'H', '?':
		r.help()

	default:
		fmt.Fprintln(r.out, "?")
	}
}

// report renders a command error the way the classic editor did.
func (r *REPL) report(err error) {
	switch {
	case errors.Is(err, buffer.ErrCapacity):
		fmt.Fprintln(r.out, "! out of space")
	case errors.Is(err, buffer.ErrLineTooLong):
		fmt.Fprintln(r.out, "! line too long")
	case errors.Is(err, editor.ErrBadLine):
		fmt.Fprintln(r.out, "! bad line")
	default:
		fmt.Fprintf(r.out, "! %v\n", err)
	}
}

func (r *REPL) readLine() (string, bool) {
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimRight(r.in.Text(), "\r"), true
}

func (r *REPL) help() {
	fmt.Fprint(r.out, `Commands:
  L [a][,b]           list lines
  I [n]               insert at n (end with a single '.')
  D a[,b]             delete lines
  E n                 edit (replace) line
  R a[,b] /old/new/[g]  replace; 'g' = global per line
  S [a][,b] /text/    search (case-insensitive)
  O name              open (load) file
  W [name]            write (save) file
  V                   fullscreen visual editor mode
  P                   print status
  H or ?              help
  Q                   quit
`)
}

func (r *REPL) banner(fname string) {
	upperName := strings.ToUpper(fname)

	fileStatus := "NEW FILE"
	if fname != "(none)" {
		if _, err := os.Stat(fname); err == nil {
			fileStatus = fmt.Sprintf("EXISTING FILE (%d LINES)", r.session.Buffer().Len())
		}
	}

	fmt.Fprint(r.out, `=================================================================
              E V I L I N E D   Advanced Line Editor
=================================================================
   Version 2.0 Enhanced Edition  (C)  2025-2026 Mickey Lawless
          Licensed under GNU GPL v3 - Free Software
-----------------------------------------------------------------
   Full-Featured Line Editor with Visual Mode & Advanced Search
   Compatible: IBM-PC / CP-M / MS-DOS / Terminal Environments
-----------------------------------------------------------------
`)
	fmt.Fprintf(r.out, "               Active File    :   %-45s\n", upperName)
	fmt.Fprintf(r.out, "               File Status    :   %-45s\n", fileStatus)
	fmt.Fprintf(r.out, "               System Time    :   %-45s\n", r.now().Format("15:04:05"))
	fmt.Fprint(r.out, `-----------------------------------------------------------------
   Features: Multi-line Insert, Search/Replace, Visual Editor,
   Range Operations, Case-Insensitive Search, Memory Management
=================================================================
         Ready.  Type '?' for Help or 'V' for Visual Mode.
            !  Visual Mode not teletype compatible.  !
=================================================================

`)
}

// splitRangeSpec separates a command tail like `1,3 /old/new/g` into its
// range and pattern-spec parts at the first delimiter. With no delimiter it
// returns an empty spec so callers can apply their own default. Range text
// before the delimiter may be empty, meaning the whole buffer.
func splitRangeSpec(rest string, count int) (textrange.Range, string, error) {
	i := strings.IndexByte(rest, '/')
	if i < 0 {
		return textrange.Range{A: 1, B: count}, "", nil
	}

	rangeText := strings.TrimSpace(rest[:i])
	if rangeText == "" {
		return textrange.Range{A: 1, B: count}, rest[i:], nil
	}

	rng, err := textrange.Parse(rangeText, count)
	if err != nil {
		return textrange.Range{}, "", err
	}
	return rng, rest[i:], nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func leadingInt(s string) int {
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
