package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/omdiag/internal/adapters/driving/mcp"
)

// Ports tried by "mcp serve --http".
const (
	mcpPortRangeStart = 8090
	mcpPortRangeEnd   = 8190
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can score
assessments and export reports.

Tools:
  list_dimensions   - The five dimensions and what each level means
  score_assessment  - Overall maturity level and next steps
  export_report     - Write the report document to a directory

By default the server communicates over stdio using JSON-RPC.
Use --port to serve over HTTP instead, or --http to take the first free
port from 8090.

Examples:
  # Stdio mode (default)
  omdiag mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  omdiag mcp serve --port 8090
  omdiag mcp serve --http`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("http", false, "serve over HTTP on the first free port from 8090")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	useHTTP, err := cmd.Flags().GetBool("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}
	if useHTTP && port == 0 {
		port, err = findAvailablePort(mcpPortRangeStart, mcpPortRangeEnd)
		if err != nil {
			return err
		}
	}

	server, err := mcp.NewServer(&mcp.Ports{Report: reportService})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
