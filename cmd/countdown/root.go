package main

import (
	"fmt"
	"os"

	"github.com/aretw0/countdown/internal/cli"
	"github.com/aretw0/countdown/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Countdown is a terminal countdown to a date you pick",
	Long: `Countdown asks for a target date (yyyy-mm-dd), remembers it, and counts
down to it once per second until it arrives.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func globalOptions(cmd *cobra.Command) cli.Options {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	plain, _ := cmd.Flags().GetBool("plain")
	return cli.Options{ConfigPath: path, Debug: debug, Plain: plain}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultPath, "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable colours and animation")
}
