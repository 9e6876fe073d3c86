// Package explain documents each port rule in Markdown and renders it for
// the terminal with glamour.
package explain

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ormasoftchile/lv2lint/pkg/lint"
)

//go:embed docs/*.md
var docs embed.FS

var files = map[string]string{
	lint.RuleClass:          "class.md",
	lint.RulePortProperties: "portproperties.md",
	lint.RuleDefault:        "numeric.md",
	lint.RuleMinimum:        "numeric.md",
	lint.RuleMaximum:        "numeric.md",
	lint.RuleRange:          "range.md",
	lint.RuleEventPort:      "eventport.md",
	lint.RuleComment:        "comment.md",
	lint.RuleGroup:          "group.md",
}

// numeric fills the shared numeric page per rule.
var numeric = map[string]*strings.Replacer{
	lint.RuleDefault: strings.NewReplacer(
		"{{rule}}", lint.RuleDefault,
		"{{property}}", "lv2:default",
		"{{fallback}}", "0",
		"{{toggled}}", ""),
	lint.RuleMinimum: strings.NewReplacer(
		"{{rule}}", lint.RuleMinimum,
		"{{property}}", "lv2:minimum",
		"{{fallback}}", "0",
		"{{toggled}}", " Toggled ports are not checked."),
	lint.RuleMaximum: strings.NewReplacer(
		"{{rule}}", lint.RuleMaximum,
		"{{property}}", "lv2:maximum",
		"{{fallback}}", "1",
		"{{toggled}}", " Toggled ports are not checked."),
}

// Lookup returns the Markdown page for a rule identifier. Identifiers match
// case-insensitively.
func Lookup(rule string) (string, error) {
	id, ok := resolve(rule)
	if !ok {
		return "", fmt.Errorf("unknown rule %q (known: %s)", rule, strings.Join(lint.PortRules().IDs(), ", "))
	}
	data, err := docs.ReadFile("docs/" + files[id])
	if err != nil {
		return "", fmt.Errorf("read rule doc: %w", err)
	}
	md := string(data)
	if r, ok := numeric[id]; ok {
		md = r.Replace(md)
	}
	return md, nil
}

func resolve(rule string) (string, bool) {
	for _, id := range lint.PortRules().IDs() {
		if strings.EqualFold(id, rule) || strings.EqualFold(strings.ReplaceAll(id, " ", ""), rule) {
			return id, true
		}
	}
	return "", false
}

// Index returns a Markdown overview of every rule in execution order.
func Index() string {
	var b strings.Builder
	b.WriteString("# Port rules\n\nRules run in this order for every port:\n\n")
	for i, id := range lint.PortRules().IDs() {
		fmt.Fprintf(&b, "%d. **%s** - %s\n", i+1, id, summary(id))
	}
	b.WriteString("\nRun `lv2lint explain <rule>` for details.\n")
	return b.String()
}

// summary is the first paragraph after the page title.
func summary(id string) string {
	md, err := Lookup(id)
	if err != nil {
		return ""
	}
	_, body, _ := strings.Cut(md, "\n\n")
	para, _, _ := strings.Cut(body, "\n\n")
	return strings.Join(strings.Fields(para), " ")
}

// Render converts Markdown to styled terminal output. Without color the
// notty style is used. Falls back to the raw input if rendering fails.
func Render(md string, width int, color bool) string {
	style := glamour.WithAutoStyle()
	if !color {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
