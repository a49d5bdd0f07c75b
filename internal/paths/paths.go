// Package paths resolves where the editor keeps its configuration. A
// project-local .evilined directory takes precedence over the per-user
// config directory.
package paths

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the YAML config file in either location.
const ConfigFileName = "config.yaml"

// localDir is the project-local config directory, relative to the working
// directory the editor was started in.
const localDir = ".evilined"

// LocalConfig returns the project-local config file path.
func LocalConfig() string {
	return filepath.Join(localDir, ConfigFileName)
}

// UserConfigDir returns the per-user config directory
// (~/.config/evilined), or "" when the home directory cannot be resolved.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "evilined")
}

// FindConfig returns the first existing config file, preferring the
// project-local one, or "" when neither location has one.
func FindConfig() string {
	if _, err := os.Stat(LocalConfig()); err == nil {
		return LocalConfig()
	}
	if dir := UserConfigDir(); dir != "" {
		p := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
