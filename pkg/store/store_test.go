package store

import (
	"testing"

	"github.com/ormasoftchile/lv2lint/pkg/vocab"
)

func TestLiteral_Accessors(t *testing.T) {
	tests := []struct {
		name  string
		lit   Literal
		kind  Kind
		float float64
		str   string
	}{
		{"int", Int(3), KindInt, 3, "3"},
		{"float", Float(0.5), KindFloat, 0.5, "0.5"},
		{"bool true", Bool(true), KindBool, 1, "true"},
		{"bool false", Bool(false), KindBool, 0, "false"},
		{"string", String("gain"), KindString, 0, "gain"},
		{"uri", URI("urn:a"), KindURI, 0, "urn:a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.lit.Kind() != tt.kind {
				t.Errorf("Kind = %s, want %s", tt.lit.Kind(), tt.kind)
			}
			if got := tt.lit.AsFloat(); got != tt.float {
				t.Errorf("AsFloat = %v, want %v", got, tt.float)
			}
			if got := tt.lit.AsString(); got != tt.str {
				t.Errorf("AsString = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestLiteral_KindTests(t *testing.T) {
	if !URI("urn:x").IsURI() || URI("urn:x").IsString() {
		t.Error("URI literal misclassified")
	}
	if String("urn:x").AsURI() != "" {
		t.Error("AsURI on a string literal should be empty")
	}
	if !Float(2).IsFloat() || Float(2).IsInt() {
		t.Error("Float literal misclassified")
	}
}

func newPortGraph() (*Graph, Port) {
	g := NewGraph()
	g.Add(vocab.LV2InputPort, vocab.RDFSSubClassOf, URI(vocab.LV2Port))
	g.Add(vocab.LV2ControlPort, vocab.RDFSSubClassOf, URI(vocab.LV2Port))
	g.Add("urn:ex:SpecialControl", vocab.RDFSSubClassOf, URI(vocab.LV2ControlPort))
	g.Add(vocab.LV2Integer, vocab.RDFType, URI(vocab.LV2PortProperty))
	g.Add(vocab.LV2Toggled, vocab.RDFType, URI(vocab.LV2PortProperty))

	g.Add("urn:ex:plugin", vocab.RDFType, URI(vocab.LV2Plugin))
	g.Add("urn:ex:plugin", vocab.LV2PortLink, URI("urn:ex:port1"))
	g.Add("urn:ex:plugin", vocab.LV2PortLink, URI("urn:ex:port0"))
	g.Add("urn:ex:port0", vocab.LV2Index, Int(0))
	g.Add("urn:ex:port0", vocab.LV2Symbol, String("gain"))
	g.Add("urn:ex:port1", vocab.LV2Index, Int(1))
	g.Add("urn:ex:port1", vocab.LV2Symbol, String("out"))

	g.Add("urn:ex:port0", vocab.RDFType, URI(vocab.LV2InputPort))
	g.Add("urn:ex:port0", vocab.RDFType, URI(vocab.LV2ControlPort))
	g.Add("urn:ex:port0", vocab.LV2PortProp, URI(vocab.LV2Integer))
	g.Add("urn:ex:port0", vocab.LV2Default, Int(2))
	g.Add("urn:ex:port0", vocab.LV2Default, Int(3))
	return g, Port{Subject: "urn:ex:port0", Index: 0, Symbol: "gain"}
}

func TestGraph_Classes(t *testing.T) {
	g, port := newPortGraph()
	got := g.Classes(port)
	if len(got) != 2 || got[0] != vocab.LV2InputPort || got[1] != vocab.LV2ControlPort {
		t.Fatalf("Classes = %v", got)
	}
	if !g.HasClass(port, vocab.LV2ControlPort) {
		t.Error("expected HasClass(ControlPort)")
	}
	if g.HasClass(port, vocab.LV2CVPort) {
		t.Error("unexpected HasClass(CVPort)")
	}
}

func TestGraph_SubclassClosure(t *testing.T) {
	g, _ := newPortGraph()
	closure := g.SubclassClosure(vocab.LV2Port)
	for _, want := range []string{vocab.LV2InputPort, vocab.LV2ControlPort, "urn:ex:SpecialControl"} {
		if !closure.Contains(want) {
			t.Errorf("closure missing %s", want)
		}
	}
	if closure.Contains(vocab.LV2Port) {
		t.Error("closure must not contain the root class")
	}

	// memo is dropped when the graph changes
	g.Add(vocab.LV2CVPort, vocab.RDFSSubClassOf, URI(vocab.LV2Port))
	if !g.SubclassClosure(vocab.LV2Port).Contains(vocab.LV2CVPort) {
		t.Error("closure not recomputed after Add")
	}
}

func TestGraph_Properties(t *testing.T) {
	g, port := newPortGraph()
	allowed := g.AllowedProperties()
	if len(allowed) != 2 {
		t.Fatalf("AllowedProperties = %v", allowed)
	}
	if !g.HasProperty(port, vocab.LV2Integer) {
		t.Error("expected integer property")
	}
	if g.HasProperty(port, vocab.LV2Toggled) {
		t.Error("unexpected toggled property")
	}
}

func TestGraph_LiteralFirstValue(t *testing.T) {
	g, port := newPortGraph()
	v, ok := g.Literal(port, vocab.LV2Default)
	if !ok {
		t.Fatal("expected default")
	}
	if v != Int(2) {
		t.Errorf("Literal = %s, want first value 2", v)
	}
	if _, ok := g.Literal(port, vocab.LV2Minimum); ok {
		t.Error("unexpected minimum")
	}
}

func TestGraph_AddDeduplicates(t *testing.T) {
	g := NewGraph()
	g.Add("s", "p", String("o"))
	g.Add("s", "p", String("o"))
	if n := len(g.Objects("s", "p")); n != 1 {
		t.Errorf("got %d objects, want 1", n)
	}
	if n := len(g.Subjects("p", String("o"))); n != 1 {
		t.Errorf("got %d subjects, want 1", n)
	}
}

func TestGraph_Ports(t *testing.T) {
	g, _ := newPortGraph()
	ports := g.Ports("urn:ex:plugin")
	if len(ports) != 2 {
		t.Fatalf("got %d ports, want 2", len(ports))
	}
	if ports[0].Symbol != "gain" || ports[1].Symbol != "out" {
		t.Errorf("ports not ordered by index: %+v", ports)
	}
}
