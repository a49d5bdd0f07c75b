package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"evilined/internal/buffer"
	"evilined/internal/config"
	"evilined/internal/editor"
	"evilined/internal/log"
	"evilined/internal/paths"
	"evilined/internal/repl"
	"evilined/internal/ui/visual"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "evilined [file]",
	Short:   "An EDLIN-style line editor with a fullscreen visual mode",
	Long: `evilined is a line-oriented text editor: list, insert, delete, edit,
replace, and search lines through a small command language, or press V for a
fullscreen visual editing mode.`,
	Args:    cobra.MaximumNArgs(1),
	Version: version,
	RunE:    runREPL,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/evilined/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write a debug log to evilined-debug.log")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("editor.max_lines", defaults.Editor.MaxLines)
	viper.SetDefault("editor.max_line_length", defaults.Editor.MaxLineLength)
	viper.SetDefault("editor.tab_width", defaults.Editor.TabWidth)
	viper.SetDefault("ui.rows", defaults.UI.Rows)
	viper.SetDefault("ui.cols", defaults.UI.Cols)
	viper.SetDefault("theme.status_foreground", defaults.Theme.StatusForeground)
	viper.SetDefault("theme.status_background", defaults.Theme.StatusBackground)
	viper.SetDefault("theme.tilde", defaults.Theme.Tilde)

	switch {
	case cfgFile != "":
		viper.SetConfigFile(cfgFile)
	default:
		// Project-local config wins over the per-user one.
		found := paths.FindConfig()
		if found == "" {
			// First run: create a commented default at .evilined/config.yaml.
			// If the write fails we just continue on defaults.
			_ = config.WriteDefaultConfig(paths.LocalConfig())
			found = paths.LocalConfig()
		}
		viper.SetConfigFile(found)
	}

	_ = viper.ReadInConfig()

	_ = viper.Unmarshal(&cfg)
}

// newSession builds the line store and session from the loaded config,
// initializing debug logging first.
func newSession() (*editor.Session, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cleanup := func() {}
	if debug || os.Getenv("EVILINED_DEBUG") != "" {
		c, err := log.Init("evilined-debug.log")
		if err != nil {
			return nil, nil, fmt.Errorf("opening debug log: %w", err)
		}
		cleanup = c
	}

	buf := buffer.NewWithLimits(cfg.Editor.MaxLines, cfg.Editor.MaxLineLength)
	return editor.NewSession(buf), cleanup, nil
}

func runREPL(cmd *cobra.Command, args []string) error {
	session, cleanup, err := newSession()
	if err != nil {
		return err
	}
	defer cleanup()

	initialFile := ""
	if len(args) > 0 {
		initialFile = args[0]
	}

	r := repl.New(session, cmd.InOrStdin(), cmd.OutOrStdout())
	r.SetVisualFunc(func(s *editor.Session) error {
		return visual.Run(s, cfg)
	})

	return r.Run(initialFile)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
