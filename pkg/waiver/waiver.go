// Package waiver compiles the waivers of an lv2lint.yaml into a
// lint.Suppressor. Each waiver is an expr-lang boolean expression evaluated
// against the finding it may suppress.
package waiver

import (
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/ormasoftchile/lv2lint/pkg/config"
	"github.com/ormasoftchile/lv2lint/pkg/lint"
	"github.com/ormasoftchile/lv2lint/pkg/store"
)

// Env is the variable set visible to waiver expressions.
type Env struct {
	Rule         string `expr:"rule"`
	Severity     string `expr:"severity"`
	Symbol       string `expr:"symbol"`
	Index        int    `expr:"index"`
	Plugin       string `expr:"plugin"`
	Substitution string `expr:"substitution"`
	Message      string `expr:"message"`
}

type compiled struct {
	name    string
	program *vm.Program
}

// Set is a compiled list of waivers. The zero Set suppresses nothing.
type Set struct {
	waivers []compiled
	plugin  string
	Logger  *slog.Logger
}

// Compile type-checks every waiver expression.
func Compile(ws []config.Waiver) (*Set, error) {
	s := &Set{}
	for i, w := range ws {
		program, err := expr.Compile(w.When, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile waiver %s: %w", label(i, w.Name), err)
		}
		s.waivers = append(s.waivers, compiled{name: label(i, w.Name), program: program})
	}
	return s, nil
}

func label(i int, name string) string {
	if name != "" {
		return fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("#%d", i)
}

// Len returns the number of waivers.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.waivers)
}

// ForPlugin returns a copy of s whose expressions see plugin as the
// plugin URI.
func (s *Set) ForPlugin(plugin string) *Set {
	c := *s
	c.plugin = plugin
	return &c
}

// Suppress implements lint.Suppressor. A waiver whose evaluation fails is
// treated as not matching.
func (s *Set) Suppress(port store.Port, ruleID string, f lint.Finding) bool {
	if s.Len() == 0 {
		return false
	}
	env := Env{
		Rule:         ruleID,
		Severity:     f.Severity.String(),
		Symbol:       port.Symbol,
		Index:        int(port.Index),
		Plugin:       s.plugin,
		Substitution: f.Substitution,
		Message:      f.Text(),
	}
	for _, w := range s.waivers {
		out, err := expr.Run(w.program, env)
		if err != nil {
			s.logger().Warn("waiver evaluation failed", "waiver", w.name, "error", err)
			continue
		}
		if ok, _ := out.(bool); ok {
			s.logger().Debug("waiver matched", "waiver", w.name, "rule", ruleID, "port", port.Symbol)
			return true
		}
	}
	return false
}

func (s *Set) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

var _ lint.Suppressor = (*Set)(nil)
