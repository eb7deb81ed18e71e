package main

import (
	"github.com/aretw0/countdown/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Runs the countdown headless and exposes it as a JSON API:

  GET  /state    current state, target and remaining time
  POST /input    dispatch a raw input {"id": ..., "parameters": {...}}
  POST /date     select a date {"date": "yyyy-mm-dd"}
  GET  /events   server-sent transition events
  GET  /graph    transition table
  GET  /metrics  Prometheus metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		return cli.RunServer(globalOptions(cmd), addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (default: http.addr from config)")
}
