package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can generate and
validate fee narratives.

By default, the server communicates over stdio using JSON-RPC.

Use --port to start an HTTP server instead, which also serves:
  /metrics  Prometheus generation metrics
  /healthz  liveness check
HTTP requests to the MCP endpoint are rate limited by the mcp.requests_per_second
and mcp.burst settings.

Vocabulary, template and config changes in the config directory are picked
up while the server runs.

Examples:
  # Stdio mode (default)
  lexonarrative mcp serve

  # HTTP mode
  lexonarrative mcp serve --port 8080

Desktop assistant configuration:
  {
    "mcpServers": {
      "lexonarrative": {
        "command": "/path/to/lexonarrative",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	if narrativeService() == nil {
		return errors.New("narrative service not configured")
	}

	ports := &mcp.Ports{
		Narrative: current.Narrative,
		Settings:  current.Settings,
	}

	var opts []mcp.Option
	if port > 0 {
		opts = append(opts, mcp.WithRateLimit(current.RateLimit, current.Burst))
		if current.MetricsHandler != nil {
			opts = append(opts, mcp.WithMetricsHandler(current.MetricsHandler))
		}
	}

	server, err := mcp.NewServer(ports, opts...)
	if err != nil {
		return err
	}

	stop := startWatch(cmd.Context())
	defer stop()

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
