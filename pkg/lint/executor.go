package lint

import (
	"log/slog"

	"github.com/ormasoftchile/lv2lint/pkg/store"
)

// Suppressor decides whether a finding is waived. A suppressed finding is
// recorded as absent and never affects the verdict.
type Suppressor interface {
	Suppress(port store.Port, ruleID string, f Finding) bool
}

// Executor runs a Registry against single ports.
type Executor struct {
	Rules Registry
	// Failure is the set of severities that make a port fail.
	Failure Mask
	// Suppress, when set, is consulted for every finding.
	Suppress Suppressor
	Logger   *slog.Logger
}

// NewExecutor returns an executor over the port registry that fails on FAIL
// findings only.
func NewExecutor() *Executor {
	return &Executor{
		Rules:   PortRules(),
		Failure: MaskOf(SeverityFail),
	}
}

// Validate runs every rule in order against port with a fresh Context and
// builds the report. It never returns nil.
func (e *Executor) Validate(st store.Store, port store.Port) *Report {
	log := e.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	ctx := NewContext(port)
	rep := &Report{
		PortIndex:  port.Index,
		PortSymbol: port.Symbol,
		Results:    make([]Result, 0, len(e.Rules)),
		Pass:       true,
	}

	for _, rule := range e.Rules {
		ctx.takeURN()
		res := Result{RuleID: rule.ID}
		if f := rule.Check(st, ctx); f != nil {
			finding := f.WithSubstitution(ctx.takeURN())
			if e.Suppress != nil && e.Suppress.Suppress(port, rule.ID, finding) {
				log.Debug("finding suppressed", "port", port.Symbol, "rule", rule.ID, "severity", finding.Severity)
			} else {
				res.Finding = &finding
				if e.Failure.Has(finding.Severity) {
					rep.Pass = false
				}
			}
		}
		log.Debug("rule checked", "port", port.Symbol, "rule", rule.ID, "finding", res.Finding != nil)
		rep.Results = append(rep.Results, res)
	}
	return rep
}
