// Package mcp provides a Model Context Protocol server for idid.
// It exposes the accomplishment log as MCP tools that any MCP-capable
// agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/idid/internal/ledger"
)

// NewServer creates an MCP server with all idid tools registered.
func NewServer(version string, store *ledger.TSVStore) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "idid",
		Version: version,
	}, nil)
	registerTools(server, store)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (append-only, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all idid tools to the server.
func registerTools(server *mcp.Server, store *ledger.TSVStore) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "add",
		Description: "Record an accomplishment. The record's timestamp marks when the " +
			"work ended; optionally backdate it with a time of day or minutes ago.",
		Annotations: writeAnnotations(),
	}, handleAdd(store))

	mcp.AddTool(server, &mcp.Tool{
		Name: "start",
		Description: "Mark the start of a work session. Time before this marker does " +
			"not count toward the next accomplishment.",
		Annotations: writeAnnotations(),
	}, handleStart(store))

	mcp.AddTool(server, &mcp.Tool{
		Name: "show",
		Description: "List accomplishments for the given dates or date ranges, most " +
			"recent first. Dates accept today, yesterday, weekday abbreviations, and " +
			"numeric forms like 3 (days ago), 0402, 20240402.",
		Annotations: readOnlyAnnotations(),
	}, handleShow(store))

	mcp.AddTool(server, &mcp.Tool{
		Name: "sum",
		Description: "Total accomplishment time per day for the given dates or date " +
			"ranges, oldest day first.",
		Annotations: readOnlyAnnotations(),
	}, handleSum(store))

	mcp.AddTool(server, &mcp.Tool{
		Name: "last",
		Description: "Show the most recent raw log lines, or with no count the time " +
			"elapsed since the last record today.",
		Annotations: readOnlyAnnotations(),
	}, handleLast(store))
}
