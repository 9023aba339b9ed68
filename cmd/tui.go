// ABOUTME: TUI command launching the interactive terminal interface
// ABOUTME: Restores the session first so the app opens past the login screen

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studylink/studylink-cli/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal interface",
	Long: `Launch the full-screen terminal interface.

Opens on your home overview when a stored session exists, otherwise on
the sign-in form. From home you can browse study groups, read the board,
and (with an admin account) view platform statistics.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, auth, err := newSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}

		if err := tui.Run(c, auth); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
