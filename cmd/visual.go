package cmd

import (
	"github.com/spf13/cobra"

	"evilined/internal/ui/visual"
)

var visualCmd = &cobra.Command{
	Use:   "visual [file]",
	Short: "Open the fullscreen visual editor directly",
	Long:  `Skip the command REPL and open the named file (or an empty buffer) in fullscreen visual mode.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runVisual,
}

func init() {
	rootCmd.AddCommand(visualCmd)
}

func runVisual(cmd *cobra.Command, args []string) error {
	session, cleanup, err := newSession()
	if err != nil {
		return err
	}
	defer cleanup()

	if len(args) > 0 {
		// A missing file is fine: start empty but keep the name for F2.
		if _, err := session.Load(args[0]); err != nil {
			session.SetFileName(args[0])
		}
	}

	return visual.Run(session, cfg)
}
