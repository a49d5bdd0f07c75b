package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults_AreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestValidate_RejectsBadLimits(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max_lines", func(c *Config) { c.Editor.MaxLines = 0 }},
		{"zero max_line_length", func(c *Config) { c.Editor.MaxLineLength = 0 }},
		{"zero tab_width", func(c *Config) { c.Editor.TabWidth = 0 }},
		{"tiny ui rows", func(c *Config) { c.UI.Rows = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

// TestDefaultConfigTemplate_MatchesDefaults parses the commented template and
// checks it round-trips to the built-in defaults, so the two can't drift.
func TestDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	var parsed struct {
		Editor struct {
			MaxLines      int `yaml:"max_lines"`
			MaxLineLength int `yaml:"max_line_length"`
			TabWidth      int `yaml:"tab_width"`
		} `yaml:"editor"`
		UI struct {
			Rows int `yaml:"rows"`
			Cols int `yaml:"cols"`
		} `yaml:"ui"`
		Theme struct {
			StatusForeground string `yaml:"status_foreground"`
			StatusBackground string `yaml:"status_background"`
			Tilde            string `yaml:"tilde"`
		} `yaml:"theme"`
	}

	require.NoError(t, yaml.Unmarshal([]byte(DefaultConfigTemplate()), &parsed))

	want := Defaults()
	assert.Equal(t, want.Editor.MaxLines, parsed.Editor.MaxLines)
	assert.Equal(t, want.Editor.MaxLineLength, parsed.Editor.MaxLineLength)
	assert.Equal(t, want.Editor.TabWidth, parsed.Editor.TabWidth)
	assert.Equal(t, want.UI.Rows, parsed.UI.Rows)
	assert.Equal(t, want.UI.Cols, parsed.UI.Cols)
	assert.Equal(t, want.Theme.StatusForeground, parsed.Theme.StatusForeground)
	assert.Equal(t, want.Theme.StatusBackground, parsed.Theme.StatusBackground)
	assert.Equal(t, want.Theme.Tilde, parsed.Theme.Tilde)
}

func TestWriteDefaultConfig_CreatesFileAndDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigTemplate(), string(data))
}
