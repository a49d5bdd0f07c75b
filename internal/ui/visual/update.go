package visual

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"evilined/internal/log"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			// Any key leaves the help screen.
			m.showHelp = false
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.saveNote = ""

	switch {
	case key.Matches(msg, m.keys.Exit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Save):
		if n, name, err := m.session.Save(""); err != nil {
			m.saveNote = "save failed"
			log.ErrorErr(log.CatUI, "visual save failed", err)
		} else {
			m.saveNote = "saved"
			log.Info(log.CatUI, "visual save", "name", name, "lines", n)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.session.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.session.MoveDown()
	case key.Matches(msg, m.keys.Left):
		m.session.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.session.MoveRight()
	case key.Matches(msg, m.keys.Home):
		m.session.MoveLineStart()
	case key.Matches(msg, m.keys.End):
		m.session.MoveLineEnd()
	case key.Matches(msg, m.keys.PageUp):
		m.session.PageUp(m.textRows())
	case key.Matches(msg, m.keys.PageDown):
		m.session.PageDown(m.textRows())

	default:
		m.handleEditKey(msg)
	}

	m.scroll()
	return m, nil
}

// handleEditKey routes the content-mutating keys through the cursor edit
// model.
func (m *Model) handleEditKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter:
		m.session.InsertNewline()
	case tea.KeyBackspace:
		m.session.Backspace()
	case tea.KeyDelete:
		m.session.DeleteChar()
	case tea.KeySpace:
		m.session.InsertChar(' ')
	case tea.KeyTab:
		for i := 0; i < m.cfg.Editor.TabWidth; i++ {
			m.session.InsertChar(' ')
		}
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
		for _, r := range msg.Runes {
			// The buffer is single-byte text; only printable ASCII goes in.
			if r >= 32 && r < 127 {
				m.session.InsertChar(byte(r))
			}
		}
	}
}

// scroll keeps the cursor row inside the visible window, mirroring the
// classic top-line tracking.
func (m *Model) scroll() {
	cur := m.session.Cursor()
	rows := m.textRows()

	top := cur.Top
	if cur.Row < top {
		top = cur.Row
	}
	if cur.Row >= top+rows {
		top = cur.Row - rows + 1
	}
	if top < 0 {
		top = 0
	}
	m.session.SetTop(top)
}
