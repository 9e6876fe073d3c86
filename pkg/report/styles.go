package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/ormasoftchile/lv2lint/pkg/lint"
)

// Palette.
var (
	colorRed    = lipgloss.Color("196")
	colorYellow = lipgloss.Color("214")
	colorCyan   = lipgloss.Color("51")
	colorGreen  = lipgloss.Color("42")
	colorDim    = lipgloss.Color("240")
)

type styles struct {
	plugin lipgloss.Style
	header lipgloss.Style
	rule   lipgloss.Style
	ref    lipgloss.Style
	pass   lipgloss.Style
	labels map[lint.Severity]lipgloss.Style
}

// newStyles binds the palette to a renderer on w with a fixed color profile,
// so colored output does not depend on whether w is a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return styles{
		plugin: r.NewStyle().Bold(true),
		header: r.NewStyle().Bold(true),
		rule:   r.NewStyle().Bold(true),
		ref:    r.NewStyle().Foreground(colorDim),
		pass:   r.NewStyle().Foreground(colorGreen),
		labels: map[lint.Severity]lipgloss.Style{
			lint.SeverityFail: r.NewStyle().Bold(true).Foreground(colorRed),
			lint.SeverityWarn: r.NewStyle().Bold(true).Foreground(colorYellow),
			lint.SeverityNote: r.NewStyle().Bold(true).Foreground(colorCyan),
		},
	}
}
