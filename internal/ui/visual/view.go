package visual

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"evilined/internal/filetype"
	"evilined/internal/ui/styles"
)

// Reverse video for the cursor cell.
const (
	cursorOn  = "\x1b[7m"
	cursorOff = "\x1b[27m"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.viewHelp()
	}

	cur := m.session.Cursor()
	buf := m.session.Buffer()

	var b strings.Builder
	for row := 0; row < m.textRows(); row++ {
		idx := cur.Top + row
		if idx < buf.Len() {
			b.WriteString(m.renderLine(buf.Line(idx), idx == cur.Row, cur.Col))
		} else {
			b.WriteString(m.tildeStyle.Render("~"))
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.viewStatus())

	return b.String()
}

// renderLine clips a line to the screen width and paints the cursor cell in
// reverse video on the cursor row.
func (m Model) renderLine(line string, cursorRow bool, col int) string {
	clipped := runewidth.Truncate(line, m.width, "")

	if !cursorRow {
		return clipped
	}

	if col > len(clipped) {
		col = len(clipped)
	}
	under := " "
	rest := ""
	if col < len(clipped) {
		under = string(clipped[col])
		rest = clipped[col+1:]
	}
	return clipped[:col] + cursorOn + under + cursorOff + rest
}

func (m Model) viewStatus() string {
	cur := m.session.Cursor()
	buf := m.session.Buffer()

	name := m.session.FileName()
	if name == "" {
		name = "(none)"
	}

	left := fmt.Sprintf(" F1=Help F2=Save ESC=Exit | Line %d/%d Col %d | %s",
		cur.Row+1, buf.Len(), cur.Col+1, name)
	if m.saveNote != "" {
		left += " [" + m.saveNote + "]"
	}

	right := filetype.Describe(m.session.FileName())
	if right != "" {
		right += " "
	}

	gap := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		// Not enough room for the file type; keep the left side only.
		right = ""
		gap = m.width - runewidth.StringWidth(left)
	}
	status := left
	if gap > 0 {
		status += strings.Repeat(" ", gap)
	}
	status += right

	return m.statusStyle.Render(runewidth.Truncate(status, m.width, ""))
}

func (m Model) viewHelp() string {
	title := styles.HelpTitle().Render("EVILINED - FULLSCREEN EDITOR - HELP")

	return title + `

  NAVIGATION:
    Arrow Keys    - Move cursor
    Home          - Beginning of line
    End           - End of line
    PgUp/PgDn     - Scroll page up/down

  EDITING:
    Type          - Insert characters
    Tab           - Insert spaces
    Enter         - Insert new line
    Backspace     - Delete previous character
    Delete        - Delete current character

  FILE OPERATIONS:
    F2            - Save file
    ESC or F10    - Exit to line mode

  Press any key to continue...`
}
