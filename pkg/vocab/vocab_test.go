package vocab

import (
	"strings"
	"testing"
)

func TestExpand(t *testing.T) {
	extra := map[string]string{"ex": "urn:example:amp#", "lv2": "urn:shadow#"}
	tests := []struct {
		in, want string
	}{
		{"rdfs:comment", RDFSComment},
		{"ev:EventPort", EventEventPort},
		{"event:EventPort", EventEventPort},
		{"ex:main", "urn:example:amp#main"},
		{"lv2:ControlPort", "urn:shadow#ControlPort"},
		{"http://lv2plug.in/ns/lv2core#Port", LV2Port},
		{"urn:x:y", "urn:x:y"},
		{"foo:Bar", "foo:Bar"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := Expand(tt.in, extra); got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := Expand("lv2:ControlPort", nil); got != LV2ControlPort {
		t.Errorf("Expand without extra = %q", got)
	}
}

func TestBuiltin(t *testing.T) {
	doc := string(Builtin)
	for _, want := range []string{"lv2:InputPort", "ev:EventPort", "lv2:toggled", "pprops:logarithmic"} {
		if !strings.Contains(doc, want) {
			t.Errorf("built-in vocabulary missing %s", want)
		}
	}
}
