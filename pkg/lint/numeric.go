package lint

import (
	"math"

	"github.com/ormasoftchile/lv2lint/pkg/store"
	"github.com/ormasoftchile/lv2lint/pkg/vocab"
)

// numericRule is the shared coercion check behind Default, Minimum and
// Maximum. The three differ only in the literal they fetch, whether toggled
// ports are skipped and which Context slot receives the value.
type numericRule struct {
	name        string // compact property name used in messages
	property    string
	skipToggled bool
	fallback    float64
	slot        func(*Context) *float64
}

var (
	defaultRule = numericRule{
		name:     "lv2:default",
		property: vocab.LV2Default,
		fallback: FallbackDefault,
		slot:     func(c *Context) *float64 { return &c.Default },
	}
	minimumRule = numericRule{
		name:        "lv2:minimum",
		property:    vocab.LV2Minimum,
		skipToggled: true,
		fallback:    FallbackMinimum,
		slot:        func(c *Context) *float64 { return &c.Minimum },
	}
	maximumRule = numericRule{
		name:        "lv2:maximum",
		property:    vocab.LV2Maximum,
		skipToggled: true,
		fallback:    FallbackMaximum,
		slot:        func(c *Context) *float64 { return &c.Maximum },
	}
)

func (r numericRule) notFound() *Finding {
	return &Finding{Severity: SeverityWarn, Message: r.name + " not found", Reference: vocab.LV2Port}
}

func (r numericRule) mismatch(what string) *Finding {
	return &Finding{Severity: SeverityWarn, Message: r.name + " not " + what, Reference: r.property}
}

func (r numericRule) applies(st store.Store, port store.Port, toggled bool) bool {
	if !isControlOrCV(st, port) || !st.HasClass(port, vocab.LV2InputPort) {
		return false
	}
	return !(r.skipToggled && toggled)
}

func (r numericRule) check(st store.Store, ctx *Context) *Finding {
	slot := r.slot(ctx)
	*slot = r.fallback

	integer := st.HasProperty(ctx.Port, vocab.LV2Integer)
	toggled := st.HasProperty(ctx.Port, vocab.LV2Toggled)
	if !r.applies(st, ctx.Port, toggled) {
		return nil
	}

	lit, ok := st.Literal(ctx.Port, r.property)
	if !ok {
		return r.notFound()
	}
	v, f := coerce(lit, integer, toggled)
	if f != "" {
		return r.mismatch(f)
	}
	*slot = v
	return nil
}

// coerce classifies lit numerically and checks it against the port's type
// flags. It returns the numeric value and, on mismatch, the expected type
// ("an integer", "a bool" or "a float"). Toggled wins over integer when a
// port carries both, so a toggled port is only ever reported as "not a bool".
func coerce(lit store.Literal, integer, toggled bool) (float64, string) {
	var v float64
	numeric := lit.IsInt() || lit.IsFloat()
	if numeric || lit.IsBool() {
		v = lit.AsFloat()
	}

	switch {
	case toggled:
		if lit.IsBool() || (numeric && (v == 0 || v == 1)) {
			return v, ""
		}
		return v, "a bool"
	case integer:
		if lit.IsInt() || (lit.IsFloat() && math.Round(v) == v) {
			return v, ""
		}
		return v, "an integer"
	default:
		if numeric {
			return v, ""
		}
		return v, "a float"
	}
}
