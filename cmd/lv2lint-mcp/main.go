// Package main provides the lv2lint-mcp binary, an MCP server for AI agents.
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	lmcp "github.com/ormasoftchile/lv2lint/pkg/ecosystem/mcp"
)

var version = "dev"

func main() {
	s := lmcp.NewServer(version)
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
