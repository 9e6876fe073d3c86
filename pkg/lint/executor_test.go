package lint

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/ormasoftchile/lv2lint/pkg/store"
	"github.com/ormasoftchile/lv2lint/pkg/vocab"
)

func TestPortRules_Order(t *testing.T) {
	want := []string{
		RuleClass, RulePortProperties, RuleDefault, RuleMinimum, RuleMaximum,
		RuleRange, RuleEventPort, RuleComment, RuleGroup,
	}
	if got := PortRules().IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs = %v, want %v", got, want)
	}
	if _, ok := PortRules().Lookup(RuleRange); !ok {
		t.Error("Lookup(Range) failed")
	}
	if _, ok := PortRules().Lookup("Nope"); ok {
		t.Error("Lookup(Nope) succeeded")
	}
}

func TestExecutor_CleanPort(t *testing.T) {
	rep := NewExecutor().Validate(controlInput(nil), testPort)
	if !rep.Pass {
		t.Error("expected pass")
	}
	if len(rep.Findings()) != 0 {
		t.Errorf("unexpected findings: %+v", rep.Findings())
	}
	if len(rep.Results) != len(PortRules()) {
		t.Errorf("got %d results, want one per rule", len(rep.Results))
	}
	if rep.PortIndex != testPort.Index || rep.PortSymbol != testPort.Symbol {
		t.Errorf("report identifies %d/%s", rep.PortIndex, rep.PortSymbol)
	}
}

func TestExecutor_RangeUsesNumericSlots(t *testing.T) {
	st := controlInput(map[string]store.Literal{
		vocab.LV2Minimum: store.Float(2),
		vocab.LV2Default: store.Float(1),
		vocab.LV2Maximum: store.Float(5),
	})
	rep := NewExecutor().Validate(st, testPort)
	if rep.Pass {
		t.Error("expected failure")
	}
	got := rep.Findings()
	if len(got) != 1 || got[0].RuleID != RuleRange {
		t.Fatalf("findings = %+v", got)
	}
}

func TestExecutor_MissingBoundsFallBack(t *testing.T) {
	// default 0.5 against fallback bounds 0..1 is in range
	st := controlInput(nil)
	delete(st.literals, vocab.LV2Minimum)
	delete(st.literals, vocab.LV2Maximum)
	rep := NewExecutor().Validate(st, testPort)
	if rep.Count(SeverityWarn) != 2 {
		t.Errorf("got %d warnings, want 2", rep.Count(SeverityWarn))
	}
	if rep.Count(SeverityFail) != 0 {
		t.Errorf("range reported against fallback bounds: %+v", rep.Findings())
	}
	if !rep.Pass {
		t.Error("warnings must not fail with the default mask")
	}
}

func TestExecutor_SkippedBoundsNeverFireRange(t *testing.T) {
	st := controlInput(nil)
	st.classes = store.Nodes{vocab.LV2OutputPort, vocab.LV2ControlPort}
	rep := NewExecutor().Validate(st, testPort)
	for _, r := range rep.Findings() {
		if r.RuleID == RuleRange {
			t.Errorf("range fired on a port with skipped bounds")
		}
	}
}

func TestExecutor_SubstitutionAttached(t *testing.T) {
	st := controlInput(nil)
	st.validClasses = store.Nodes{"A", "B"}
	st.classes = store.Nodes{"A", "C"}
	rep := NewExecutor().Validate(st, testPort)
	r := rep.Results[0]
	if r.RuleID != RuleClass || r.Finding == nil {
		t.Fatalf("class result = %+v", r)
	}
	if r.Finding.Substitution != "C" {
		t.Errorf("substitution = %q, want C", r.Finding.Substitution)
	}
	// the URN must not leak into later rules
	for _, res := range rep.Results[1:] {
		if res.Finding != nil && res.Finding.Substitution != "" {
			t.Errorf("rule %s carries substitution %q", res.RuleID, res.Finding.Substitution)
		}
	}
}

func TestExecutor_CommentMissingIsOneNote(t *testing.T) {
	st := controlInput(nil)
	delete(st.literals, vocab.RDFSComment)
	rep := NewExecutor().Validate(st, testPort)
	f := rep.Results[7]
	if f.RuleID != RuleComment || f.Finding == nil || f.Finding.Severity != SeverityNote {
		t.Fatalf("comment result = %+v", f)
	}
	if rep.Count(SeverityFail) != 0 || !rep.Pass {
		t.Error("missing comment must not fail")
	}
}

func TestExecutor_FailureMask(t *testing.T) {
	warnOnly := controlInput(nil)
	delete(warnOnly.literals, vocab.LV2Default)
	delete(warnOnly.literals, vocab.PGGroup)

	failing := controlInput(nil)
	failing.classes = append(store.Nodes{vocab.EventEventPort}, failing.classes...)

	exec := NewExecutor()
	if rep := exec.Validate(warnOnly, testPort); !rep.Pass {
		t.Error("WARN/NOTE only port must pass with failure mask {FAIL}")
	}
	if rep := exec.Validate(failing, testPort); rep.Pass {
		t.Error("port with a FAIL finding must fail")
	}

	exec.Failure = MaskOf(SeverityWarn, SeverityFail)
	if rep := exec.Validate(warnOnly, testPort); rep.Pass {
		t.Error("WARN must fail when in the failure mask")
	}

	exec.Failure = MaskNone
	if rep := exec.Validate(failing, testPort); !rep.Pass {
		t.Error("empty failure mask must always pass")
	}
}

type suppressRule string

func (s suppressRule) Suppress(_ store.Port, ruleID string, _ Finding) bool {
	return ruleID == string(s)
}

func TestExecutor_Suppress(t *testing.T) {
	st := controlInput(nil)
	st.classes = append(st.classes, vocab.EventEventPort)
	exec := NewExecutor()
	exec.Suppress = suppressRule(RuleEventPort)
	rep := exec.Validate(st, testPort)
	if !rep.Pass {
		t.Error("suppressed FAIL must not fail the port")
	}
	if len(rep.Findings()) != 0 {
		t.Errorf("findings = %+v", rep.Findings())
	}
}

func TestExecutor_Idempotent(t *testing.T) {
	st := controlInput(map[string]store.Literal{vocab.LV2Default: store.String("x")}, "urn:ex:bogus")
	exec := NewExecutor()
	a, _ := json.Marshal(exec.Validate(st, testPort))
	b, _ := json.Marshal(exec.Validate(st, testPort))
	if string(a) != string(b) {
		t.Errorf("reports differ:\n%s\n%s", a, b)
	}
}

func TestReport_Visible(t *testing.T) {
	st := controlInput(nil)
	delete(st.literals, vocab.RDFSComment)
	rep := NewExecutor().Validate(st, testPort)
	if !rep.Visible(MaskAll) {
		t.Error("note should be visible with all severities shown")
	}
	if rep.Visible(MaskOf(SeverityWarn, SeverityFail)) {
		t.Error("note should be hidden when notes are masked")
	}
}
