package lint

// Result pairs a rule identifier with its finding, nil when the port passed
// the rule.
type Result struct {
	RuleID  string   `json:"rule"`
	Finding *Finding `json:"finding,omitempty"`
}

// Report is the outcome of validating one port.
type Report struct {
	PortIndex  uint32   `json:"index"`
	PortSymbol string   `json:"symbol"`
	Results    []Result `json:"results"`
	// Pass is false iff a finding's severity is in the executor's failure
	// mask.
	Pass bool `json:"pass"`
}

// Findings returns the non-nil findings in rule order.
func (r *Report) Findings() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Finding != nil {
			out = append(out, res)
		}
	}
	return out
}

// Visible reports whether any finding's severity is in show.
func (r *Report) Visible(show Mask) bool {
	for _, res := range r.Results {
		if res.Finding != nil && show.Has(res.Finding.Severity) {
			return true
		}
	}
	return false
}

// Count returns the number of findings with severity s.
func (r *Report) Count(s Severity) int {
	n := 0
	for _, res := range r.Results {
		if res.Finding != nil && res.Finding.Severity == s {
			n++
		}
	}
	return n
}
