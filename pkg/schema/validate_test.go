package schema

import (
	"strings"
	"testing"
)

func filterErrors(errs []*ValidationError) []*ValidationError {
	var out []*ValidationError
	for _, e := range errs {
		if e.Severity == "error" {
			out = append(out, e)
		}
	}
	return out
}

func containsMessage(errs []*ValidationError, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidateFile_Valid(t *testing.T) {
	for _, name := range []string{"amp.yaml", "vocabulary.yaml"} {
		t.Run(name, func(t *testing.T) {
			b, errs := ValidateFile(testdataPath(name))
			for _, e := range errs {
				t.Errorf("unexpected: %s", e)
			}
			if b == nil {
				t.Fatal("expected bundle")
			}
		})
	}
}

func TestValidateFile_Structural(t *testing.T) {
	b, errs := ValidateFile(testdataPath("unknown_field.yaml"))
	if b != nil {
		t.Error("expected nil bundle on structural failure")
	}
	if len(errs) != 1 || errs[0].Phase != "structural" {
		t.Fatalf("errs = %v", errs)
	}
}

func TestValidateFile_Semantic(t *testing.T) {
	_, errs := ValidateFile(testdataPath("missing_uri.yaml"))
	errors := filterErrors(errs)
	if len(errors) == 0 {
		t.Fatal("expected semantic errors")
	}
	for _, e := range errors {
		if e.Phase != "semantic" {
			t.Errorf("phase = %q, want semantic (domain must not run)", e.Phase)
		}
	}
}

func TestValidateFile_Domain(t *testing.T) {
	_, errs := ValidateFile(testdataPath("duplicates.yaml"))
	errors := filterErrors(errs)
	for _, want := range []string{"duplicate port index", "duplicate port symbol", "unknown prefix \"foo\""} {
		if !containsMessage(errors, want) {
			t.Errorf("expected error containing %q, got %v", want, errors)
		}
	}
	if !containsMessage(errs, "not a valid LV2 symbol") {
		t.Error("expected symbol warning")
	}
	if !containsMessage(errs, "not contiguous") {
		t.Error("expected contiguity warning")
	}
}

func TestValidateFile_ClashingPredicates(t *testing.T) {
	_, errs := ValidateFile(testdataPath("clashing.yaml"))
	errors := filterErrors(errs)
	want := map[string]string{
		"plugin.ports[0].values.lv2:default": "already set by default",
		"plugin.ports[0].values.lv2:minimum": "already set by values.http://lv2plug.in/ns/lv2core#minimum",
		"plugin.ports[0].values.lv2:symbol":  "already set by symbol",
	}
	if len(errors) != len(want) {
		t.Fatalf("got %d errors, want %d: %v", len(errors), len(want), errors)
	}
	for _, e := range errors {
		if msg, ok := want[e.Path]; !ok || !strings.Contains(e.Message, msg) {
			t.Errorf("unexpected error %v", e)
		}
	}
}

func TestValidateBundle_APIVersion(t *testing.T) {
	b := &Bundle{APIVersion: "lv2lint/v9", Plugin: Plugin{URI: "urn:x"}}
	errs := ValidateBundle(b)
	if !HasErrors(errs) {
		t.Fatal("expected apiVersion error")
	}
}

func TestValidationError_Error(t *testing.T) {
	e := errorf("domain", "plugin.ports[0]", "bad %s", "thing")
	if got := e.Error(); got != "[domain] bad thing at plugin.ports[0]" {
		t.Errorf("Error() = %q", got)
	}
}
