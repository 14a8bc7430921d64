// Package main provides the entry point for the idid CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	ididmcp "github.com/gorewood/idid/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run idid as a Model Context Protocol (MCP) server over stdio.

This exposes the accomplishment log as MCP tools that any MCP-capable
agent environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "idid": {
        "command": "idid",
        "args": ["serve"]
      }
    }
  }

Available tools: add, start, show, sum, last`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := resolveStore(cmd)
			if err != nil {
				return err
			}
			server := ididmcp.NewServer(buildVersion(), store)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
