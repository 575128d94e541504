package main

import (
	"net/http"

	"github.com/aretw0/dpda/internal/cli"
	"github.com/aretw0/dpda/pkg/adapters/mcp"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp <definition>",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes sessions of the automaton as MCP tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		a, err := app.Load(args[0])
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		manager, closeStore, err := app.NewManager(ctx, a)
		if err != nil {
			return err
		}
		defer closeStore()

		srv := mcp.NewServer(manager,
			mcp.WithLogger(app.Logger),
			mcp.WithVerdictObserver(app.ObserveVerdict))

		switch transport {
		case "stdio":
			app.Logger.Info("starting MCP server (stdio)")
			return srv.ServeStdio()
		case "sse":
			app.Logger.Info("starting MCP server (SSE)", "port", port)
			if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			app.Logger.Info("MCP server stopped gracefully")
			return nil
		default:
			return errors.Newf("unknown transport %q, supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
