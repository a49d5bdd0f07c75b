// Package visual implements the fullscreen editor as a Bubble Tea program.
// All buffer mutation goes through the session's cursor edit model; this
// package only decodes keystrokes and renders.
package visual

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"evilined/internal/config"
	"evilined/internal/editor"
	"evilined/internal/ui/styles"
)

// Model holds the visual-mode state: the session being edited, the assumed
// screen geometry, and whether the help screen is up.
type Model struct {
	session *editor.Session
	cfg     config.Config
	keys    keyMap

	width  int
	height int

	showHelp bool
	saveNote string // transient status-bar note after F2

	statusStyle lipgloss.Style
	tildeStyle  lipgloss.Style
}

// New creates a visual-mode model over the session. The cursor resets to
// (0,0) on entry and an empty buffer gets its first addressable row, as the
// classic editor did.
func New(session *editor.Session, cfg config.Config) Model {
	session.ResetCursor()
	if session.Buffer().Len() == 0 {
		session.EnsureRow(0)
	}

	return Model{
		session:     session,
		cfg:         cfg,
		keys:        defaultKeyMap(),
		width:       cfg.UI.Cols,
		height:      cfg.UI.Rows,
		statusStyle: styles.StatusBar(cfg.Theme),
		tildeStyle:  styles.Tilde(cfg.Theme),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run enters visual mode for the session and blocks until the user exits.
func Run(session *editor.Session, cfg config.Config) error {
	p := tea.NewProgram(New(session, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running visual mode: %w", err)
	}
	return nil
}

// textRows is the number of buffer rows on screen; the last row is the
// status bar.
func (m Model) textRows() int {
	if m.height < 2 {
		return 1
	}
	return m.height - 1
}
