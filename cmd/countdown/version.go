package main

import (
	"fmt"

	"github.com/aretw0/countdown"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of countdown",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "countdown version %s\n", countdown.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
