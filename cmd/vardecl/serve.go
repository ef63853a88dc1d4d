package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vardecl/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve [flags]",
	Short: "Serve declaration checks over WebSocket",
	Long: `Serve starts an HTTP server with GET /healthz and a WebSocket endpoint at
GET /ws accepting check, tokenize and ping messages.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:8765", "listen address")
}

func runServe(cmd *cobra.Command, _ []string) error {
	addr := current.cfg.Serve.Addr
	if !current.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "listening on http://%s (ws: /ws)\n", addr)
	}
	return server.New(current.logger).ListenAndServe(cmd.Context(), addr)
}
