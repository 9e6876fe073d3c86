// Package report renders port validation reports for people (aligned,
// optionally colored text) and for tools (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/ormasoftchile/lv2lint/pkg/lint"
)

// RuleWidth is the display width rule identifiers are padded to.
const RuleWidth = 16

// Reporter writes reports. Only findings whose severity is in Show are
// written, and a port without visible findings produces no output at all.
type Reporter struct {
	Show  lint.Mask
	Color bool
}

// New returns a reporter for the given display mask.
func New(show lint.Mask, color bool) *Reporter {
	return &Reporter{Show: show, Color: color}
}

func (r *Reporter) paint(s string, style lipgloss.Style) string {
	if !r.Color {
		return s
	}
	return style.Render(s)
}

// label renders the bracketed severity label, e.g. "[FAIL]", with the
// styles bound to the output writer.
func (r *Reporter) label(st styles, s lint.Severity) string {
	return r.paint("["+s.String()+"]", st.labels[s])
}

// WritePlugin writes the plugin line followed by every visible port.
func (r *Reporter) WritePlugin(w io.Writer, uri string, reps []*lint.Report) error {
	st := newStyles(w)
	visible := false
	for _, rep := range reps {
		if rep.Visible(r.Show) {
			visible = true
			break
		}
	}
	if !visible {
		return nil
	}
	if _, err := fmt.Fprintf(w, "<%s>\n", r.paint(uri, st.plugin)); err != nil {
		return err
	}
	for _, rep := range reps {
		if err := r.writePort(w, st, rep); err != nil {
			return err
		}
	}
	return nil
}

// WritePort writes one port: a header line and one line per visible finding.
func (r *Reporter) WritePort(w io.Writer, rep *lint.Report) error {
	return r.writePort(w, newStyles(w), rep)
}

func (r *Reporter) writePort(w io.Writer, st styles, rep *lint.Report) error {
	if !rep.Visible(r.Show) {
		return nil
	}
	header := fmt.Sprintf("{%d : %s}", rep.PortIndex, rep.PortSymbol)
	if _, err := fmt.Fprintf(w, "  %s\n", r.paint(header, st.header)); err != nil {
		return err
	}
	for _, res := range rep.Results {
		f := res.Finding
		if f == nil || !r.Show.Has(f.Severity) {
			continue
		}
		rule := runewidth.FillRight(res.RuleID, RuleWidth)
		_, err := fmt.Fprintf(w, "    %s  %s=> %s %s\n",
			r.label(st, f.Severity),
			r.paint(rule, st.rule),
			f.Text(),
			r.paint("<"+f.Reference+">", st.ref))
		if err != nil {
			return err
		}
	}
	return nil
}

// Summary writes the one-line verdict for a plugin.
func (r *Reporter) Summary(w io.Writer, uri string, failed, total int) error {
	st := newStyles(w)
	if failed == 0 {
		_, err := fmt.Fprintf(w, "%s %s: %d ports checked\n", r.paint("PASS", st.pass), uri, total)
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s: %d of %d ports failed\n", r.label(st, lint.SeverityFail), uri, failed, total)
	return err
}

// Document is the JSON form of a validated plugin.
type Document struct {
	Bundle string         `json:"bundle,omitempty"`
	Plugin string         `json:"plugin"`
	Pass   bool           `json:"pass"`
	Failed int            `json:"failed"`
	Total  int            `json:"total"`
	Ports  []PortDocument `json:"ports"`
}

// PortDocument is the JSON form of one port report.
type PortDocument struct {
	Index    uint32            `json:"index"`
	Symbol   string            `json:"symbol"`
	Pass     bool              `json:"pass"`
	Findings []FindingDocument `json:"findings"`
}

// FindingDocument is one visible finding with its message rendered.
type FindingDocument struct {
	Rule      string        `json:"rule"`
	Severity  lint.Severity `json:"severity"`
	Message   string        `json:"message"`
	Reference string        `json:"reference"`
}

// Document builds the JSON document for a plugin, keeping only findings in
// the display mask. Every port is listed so pass/fail stays visible.
func (r *Reporter) Document(bundle, uri string, reps []*lint.Report) Document {
	doc := Document{Bundle: bundle, Plugin: uri, Pass: true, Total: len(reps), Ports: []PortDocument{}}
	for _, rep := range reps {
		pd := PortDocument{Index: rep.PortIndex, Symbol: rep.PortSymbol, Pass: rep.Pass, Findings: []FindingDocument{}}
		for _, res := range rep.Results {
			f := res.Finding
			if f == nil || !r.Show.Has(f.Severity) {
				continue
			}
			pd.Findings = append(pd.Findings, FindingDocument{
				Rule:      res.RuleID,
				Severity:  f.Severity,
				Message:   f.Text(),
				Reference: f.Reference,
			})
		}
		if !rep.Pass {
			doc.Pass = false
			doc.Failed++
		}
		doc.Ports = append(doc.Ports, pd)
	}
	return doc
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
