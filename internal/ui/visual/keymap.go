package visual

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the visual-mode key bindings. Function keys mirror the
// classic fullscreen editor: F1 help, F2 save, F10 or Esc to leave.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Save     key.Binding
	Exit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
		Left:     key.NewBinding(key.WithKeys("left")),
		Right:    key.NewBinding(key.WithKeys("right")),
		Home:     key.NewBinding(key.WithKeys("home")),
		End:      key.NewBinding(key.WithKeys("end")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Help:     key.NewBinding(key.WithKeys("f1")),
		Save:     key.NewBinding(key.WithKeys("f2")),
		Exit:     key.NewBinding(key.WithKeys("esc", "f10")),
	}
}
