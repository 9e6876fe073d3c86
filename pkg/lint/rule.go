package lint

import "github.com/ormasoftchile/lv2lint/pkg/store"

// CheckFunc inspects one port. It returns nil when the port passes and at
// most one finding otherwise. It may write Context slots for later rules.
type CheckFunc func(st store.Store, ctx *Context) *Finding

// Rule is one named check.
type Rule struct {
	ID    string
	Check CheckFunc
}

// Registry is an ordered list of rules. Order is evaluation order: a rule that
// reads a Context slot must come after the rule that writes it.
type Registry []Rule

// IDs returns the rule identifiers in evaluation order.
func (r Registry) IDs() []string {
	ids := make([]string, len(r))
	for i, rule := range r {
		ids[i] = rule.ID
	}
	return ids
}

// Lookup returns the rule with the given identifier.
func (r Registry) Lookup(id string) (Rule, bool) {
	for _, rule := range r {
		if rule.ID == id {
			return rule, true
		}
	}
	return Rule{}, false
}

// Rule identifiers.
const (
	RuleClass          = "Class"
	RulePortProperties = "PortProperties"
	RuleDefault        = "Default"
	RuleMinimum        = "Minimum"
	RuleMaximum        = "Maximum"
	RuleRange          = "Range"
	RuleEventPort      = "Event Port"
	RuleComment        = "Comment"
	RuleGroup          = "Group"
)

// PortRules returns the port registry. Default, Minimum and Maximum populate
// the Context slots that Range reads, so they run first.
func PortRules() Registry {
	return Registry{
		{ID: RuleClass, Check: checkClass},
		{ID: RulePortProperties, Check: checkProperties},
		{ID: RuleDefault, Check: defaultRule.check},
		{ID: RuleMinimum, Check: minimumRule.check},
		{ID: RuleMaximum, Check: maximumRule.check},
		{ID: RuleRange, Check: checkRange},
		{ID: RuleEventPort, Check: checkEventPort},
		{ID: RuleComment, Check: checkComment},
		{ID: RuleGroup, Check: checkGroup},
	}
}
