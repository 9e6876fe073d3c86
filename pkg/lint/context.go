package lint

import "github.com/ormasoftchile/lv2lint/pkg/store"

// Fallbacks for the numeric context slots, used when the rule computing the
// slot is skipped or reports a finding.
const (
	FallbackDefault = 0.0
	FallbackMinimum = 0.0
	FallbackMaximum = 1.0
)

// Context is the scratch state of one port validation pass. It is created by
// the Executor, threaded through the rules in registry order and discarded
// once the Report is built.
//
// Default, Minimum and Maximum are written by the numeric rules and read by
// the range rule, so the numeric rules must precede it in the registry.
type Context struct {
	Port store.Port

	Default float64
	Minimum float64
	Maximum float64

	urn string
}

// NewContext returns a context for port with every slot at its fallback.
func NewContext(port store.Port) *Context {
	return &Context{
		Port:    port,
		Default: FallbackDefault,
		Minimum: FallbackMinimum,
		Maximum: FallbackMaximum,
	}
}

// SetURN records the IRI a rule discovered; the executor attaches it to the
// rule's finding as the substitution.
func (c *Context) SetURN(urn string) { c.urn = urn }

// takeURN returns and clears the recorded IRI.
func (c *Context) takeURN() string {
	u := c.urn
	c.urn = ""
	return u
}
