// Package styles builds the lipgloss styles used by visual mode from the
// theme configuration.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"evilined/internal/config"
)

// StatusBar returns the reverse-video style for the bottom status line.
func StatusBar(theme config.ThemeConfig) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusForeground)).
		Background(lipgloss.Color(theme.StatusBackground))
}

// Tilde returns the style for the "~" marker on rows past the buffer end.
func Tilde(theme config.ThemeConfig) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Tilde))
}

// HelpTitle returns the style for the help screen heading.
func HelpTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}
