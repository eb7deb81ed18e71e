package main

import (
	"github.com/aretw0/countdown/internal/cli"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the persisted target date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Status(cmd.Context(), globalOptions(cmd), cmd.OutOrStdout())
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the persisted target date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Reset(cmd.Context(), globalOptions(cmd), cmd.OutOrStdout())
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the state machine as a Mermaid diagram",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Graph(cmd.Context(), globalOptions(cmd), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd, resetCmd, graphCmd)
}
