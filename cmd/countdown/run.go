package main

import (
	"github.com/aretw0/countdown/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the countdown interactively",
	Long: `Starts the countdown on the terminal. Type a date (yyyy-mm-dd) to count down
to it, 'change' to pick another date, 'status' to print the state and 'quit' to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunSession(globalOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// 'run' is the default command.
	rootCmd.RunE = runCmd.RunE
}
