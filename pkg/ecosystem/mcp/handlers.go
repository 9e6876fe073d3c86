package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/ormasoftchile/lv2lint/pkg/config"
	"github.com/ormasoftchile/lv2lint/pkg/explain"
	"github.com/ormasoftchile/lv2lint/pkg/lint"
	"github.com/ormasoftchile/lv2lint/pkg/plugin"
	"github.com/ormasoftchile/lv2lint/pkg/report"
	"github.com/ormasoftchile/lv2lint/pkg/schema"
)

// HandleValidate implements the lv2lint/validate MCP tool.
func HandleValidate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	path, _ := args["path"].(string)
	if path == "" {
		return errorResult("path argument is required"), nil
	}

	cfg, err := config.Discover(path)
	if err != nil {
		return errorResult(fmt.Sprintf("load config: %s", err)), nil
	}
	show := cfg.ShowMask()
	if s, _ := args["show"].(string); s != "" {
		if show, err = lint.ParseMask(s); err != nil {
			return errorResult(fmt.Sprintf("show: %s", err)), nil
		}
	}
	opts, err := plugin.OptionsFromConfig(cfg, nil)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	if s, _ := args["mask"].(string); s != "" {
		if opts.Failure, err = lint.ParseMask(s); err != nil {
			return errorResult(fmt.Sprintf("mask: %s", err)), nil
		}
	}

	res, err := plugin.LintFile(path, opts)
	if err != nil {
		var le *plugin.LoadError
		if errors.As(err, &le) {
			return errorResult(formatErrors(le.Errors)), nil
		}
		return errorResult(err.Error()), nil
	}

	doc := report.New(show, false).Document(path, res.Plugin, res.Reports)
	data, _ := json.MarshalIndent(doc, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(data))},
		IsError: !doc.Pass,
	}, nil
}

// HandleExplain implements the lv2lint/explain MCP tool.
func HandleExplain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	rule, _ := args["rule"].(string)
	if rule == "" {
		return textResult(explain.Index()), nil
	}
	md, err := explain.Lookup(rule)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return textResult(md), nil
}

// HandleSchema implements the lv2lint/schema MCP tool.
func HandleSchema(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := schema.GenerateJSONSchema()
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return textResult(string(data)), nil
}

func formatErrors(errs []*schema.ValidationError) string {
	var msgs []string
	for _, e := range errs {
		if e.Severity == "error" {
			msgs = append(msgs, e.Error())
		}
	}
	return strings.Join(msgs, "; ")
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(msg),
		},
		IsError: true,
	}
}
