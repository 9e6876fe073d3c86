package lint

import "strings"

// Placeholder is the marker in a message template that is replaced by a
// finding's substitution when rendered.
const Placeholder = "%s"

// Finding is the outcome of one rule for one port. Message is a template
// that may contain Placeholder, Reference is a documentation IRI and
// Substitution is the IRI or value the rule discovered while checking (empty
// when it recorded none). A Finding is a value and is never modified after
// the executor attaches its substitution.
type Finding struct {
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	Reference    string   `json:"reference"`
	Substitution string   `json:"substitution,omitempty"`
}

// WithSubstitution returns a copy of f carrying s.
func (f Finding) WithSubstitution(s string) Finding {
	f.Substitution = s
	return f
}

// Text renders the message with its placeholder substituted.
func (f Finding) Text() string {
	return Render(f.Message, f.Substitution)
}

// Render replaces the first Placeholder in template with subst. Templates
// without a placeholder, or an empty subst, are returned verbatim.
func Render(template, subst string) string {
	if subst == "" || !strings.Contains(template, Placeholder) {
		return template
	}
	return strings.Replace(template, Placeholder, subst, 1)
}
