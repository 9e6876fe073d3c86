// Package mcp exposes lv2lint to AI agents as Model Context Protocol tools.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates a new MCP server with the lv2lint tools registered.
func NewServer(version string) *server.MCPServer {
	s := server.NewMCPServer(
		"lv2lint",
		version,
		server.WithToolCapabilities(true),
	)

	s.AddTool(
		mcp.NewTool("lv2lint/validate",
			mcp.WithDescription("Validate every port of an LV2 plugin bundle YAML file and report findings as JSON"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to the bundle YAML file")),
			mcp.WithString("show", mcp.Description("Severities to report, e.g. 'warn,fail' (default: all)")),
			mcp.WithString("mask", mcp.Description("Severities that fail a port, e.g. 'fail' (default: from lv2lint.yaml, else fail)")),
		),
		HandleValidate,
	)

	s.AddTool(
		mcp.NewTool("lv2lint/explain",
			mcp.WithDescription("Explain a port rule in Markdown, or list all rules when none is given"),
			mcp.WithString("rule", mcp.Description("Rule identifier, e.g. 'Range' or 'Event Port'")),
		),
		HandleExplain,
	)

	s.AddTool(
		mcp.NewTool("lv2lint/schema",
			mcp.WithDescription("Export the JSON Schema for lv2lint bundle documents"),
		),
		HandleSchema,
	)

	return s
}
