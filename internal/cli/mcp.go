package cli

import (
	"fmt"
	"os"

	"github.com/coinwatch/coinprice/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server on stdio",
	Long: `Starts the Model Context Protocol (MCP) server on stdio.

This command is used by MCP clients (Claude Desktop, etc.) to communicate
with coinprice. It should not be run directly by users.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	if isTerminal(os.Stdin) && !flagQuiet {
		fmt.Fprintln(os.Stderr, "coinprice mcp speaks JSON-RPC on stdio; it is meant to be launched by an MCP client")
	}
	return mcp.Serve()
}
