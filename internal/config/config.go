// Package config provides configuration types and defaults for evilined.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"evilined/internal/log"
)

// EditorConfig holds the buffer policy limits.
type EditorConfig struct {
	// MaxLines is the soft line-count capacity. Operations that would grow
	// the buffer past it are rejected, matching the classic fixed bound.
	MaxLines int `mapstructure:"max_lines"`

	// MaxLineLength is the maximum content length of a single line.
	MaxLineLength int `mapstructure:"max_line_length"`

	// TabWidth is the number of spaces a Tab inserts in visual mode.
	TabWidth int `mapstructure:"tab_width"`
}

// UIConfig holds visual-mode display options.
type UIConfig struct {
	// Rows is the screen height assumed before the terminal reports its
	// size (visual mode tracks resize messages afterwards).
	Rows int `mapstructure:"rows"`

	// Cols is the assumed screen width before the first resize message.
	Cols int `mapstructure:"cols"`
}

// ThemeConfig holds the visual-mode colors.
type ThemeConfig struct {
	StatusForeground string `mapstructure:"status_foreground"`
	StatusBackground string `mapstructure:"status_background"`
	Tilde            string `mapstructure:"tilde"`
}

// Config holds all configuration options for evilined.
type Config struct {
	Editor EditorConfig `mapstructure:"editor"`
	UI     UIConfig     `mapstructure:"ui"`
	Theme  ThemeConfig  `mapstructure:"theme"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			MaxLines:      1200,
			MaxLineLength: 255,
			TabWidth:      8,
		},
		UI: UIConfig{
			Rows: 24,
			Cols: 80,
		},
		Theme: ThemeConfig{
			StatusForeground: "#000000",
			StatusBackground: "#C0C0C0",
			Tilde:            "#626262",
		},
	}
}

// Validate checks the loaded configuration for values the editor cannot run
// with.
func (c Config) Validate() error {
	if c.Editor.MaxLines < 1 {
		return fmt.Errorf("editor.max_lines must be at least 1, got %d", c.Editor.MaxLines)
	}
	if c.Editor.MaxLineLength < 1 {
		return fmt.Errorf("editor.max_line_length must be at least 1, got %d", c.Editor.MaxLineLength)
	}
	if c.Editor.TabWidth < 1 {
		return fmt.Errorf("editor.tab_width must be at least 1, got %d", c.Editor.TabWidth)
	}
	if c.UI.Rows < 2 {
		return fmt.Errorf("ui.rows must be at least 2, got %d", c.UI.Rows)
	}
	return nil
}

// DefaultConfigTemplate returns the commented YAML written when no config
// file exists.
func DefaultConfigTemplate() string {
	return `# evilined configuration
#
# Lookup order:
#   1. .evilined/config.yaml   (current directory)
#   2. ~/.config/evilined/config.yaml

editor:
  # Soft capacity: commands that would grow the buffer past this fail.
  max_lines: 1200
  # Maximum length of a single line; longer content is rejected, not cut.
  max_line_length: 255
  # Spaces inserted per Tab in visual mode.
  tab_width: 8

ui:
  # Assumed terminal size until the terminal reports one.
  rows: 24
  cols: 80

theme:
  # Visual-mode status bar (classic reverse video).
  status_foreground: "#000000"
  status_background: "#C0C0C0"
  # The "~" marker on rows past the end of the buffer.
  tilde: "#626262"
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments, creating the parent directory if needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
