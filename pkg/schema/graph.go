package schema

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ormasoftchile/lv2lint/pkg/store"
	"github.com/ormasoftchile/lv2lint/pkg/vocab"
)

// PortSubject returns the graph node used for the port at index.
func (b *Bundle) PortSubject(index uint32) string {
	return fmt.Sprintf("%s#port%d", b.Plugin.URI, index)
}

// Graph builds the metadata graph for the bundle: the built-in LV2
// vocabulary, the bundle's own vocabulary and one node per port.
func (b *Bundle) Graph() (*store.Graph, error) {
	builtin, err := LoadVocabulary(vocab.Builtin)
	if err != nil {
		return nil, fmt.Errorf("built-in vocabulary: %w", err)
	}

	g := store.NewGraph()
	addVocabulary(g, builtin, nil)
	if b.Vocabulary != nil {
		addVocabulary(g, b.Vocabulary, b.Prefixes)
	}

	plugin := b.Plugin.URI
	g.Add(plugin, vocab.RDFType, store.URI(vocab.LV2Plugin))
	for _, p := range b.Plugin.Ports {
		subject := b.PortSubject(p.Index)
		g.Add(plugin, vocab.LV2PortLink, store.URI(subject))
		g.Add(subject, vocab.LV2Index, store.Int(int64(p.Index)))
		g.Add(subject, vocab.LV2Symbol, store.String(p.Symbol))
		if p.Name != "" {
			g.Add(subject, vocab.LV2Name, store.String(p.Name))
		}
		for _, c := range p.Classes {
			g.Add(subject, vocab.RDFType, store.URI(b.expand(c)))
		}
		for _, prop := range p.Properties {
			g.Add(subject, vocab.LV2PortProp, store.URI(b.expand(prop)))
		}
		for _, f := range p.fixedValues() {
			if f.value != nil {
				g.Add(subject, f.predicate, b.literal(*f.value))
			}
		}
		for _, pred := range slices.Sorted(maps.Keys(p.Values)) {
			g.Add(subject, b.expand(pred), b.literal(p.Values[pred]))
		}
	}
	return g, nil
}

// Ports lists the bundle's ports as store ports, ordered by index.
func (b *Bundle) Ports(g *store.Graph) []store.Port {
	return g.Ports(b.Plugin.URI)
}

// addVocabulary expands v's names with prefixes over the built-in table.
// The built-in vocabulary is added with nil prefixes so a bundle cannot
// rebind the names it is written in.
func addVocabulary(g *store.Graph, v *Vocabulary, prefixes map[string]string) {
	for _, c := range v.Classes {
		g.Add(vocab.Expand(c.URI, prefixes), vocab.RDFSSubClassOf, store.URI(vocab.Expand(c.SubClassOf, prefixes)))
	}
	for _, p := range v.PortProperties {
		g.Add(vocab.Expand(p, prefixes), vocab.RDFType, store.URI(vocab.LV2PortProperty))
	}
}

type fixedValue struct {
	field     string
	predicate string
	value     *Value
}

// fixedValues lists the dedicated literal fields of a port in a fixed order.
func (p *Port) fixedValues() []fixedValue {
	return []fixedValue{
		{"default", vocab.LV2Default, p.Default},
		{"minimum", vocab.LV2Minimum, p.Minimum},
		{"maximum", vocab.LV2Maximum, p.Maximum},
		{"comment", vocab.RDFSComment, p.Comment},
		{"group", vocab.PGGroup, p.Group},
	}
}

func (b *Bundle) expand(name string) string {
	return vocab.Expand(name, b.Prefixes)
}

// literal expands prefixed names inside IRI literals.
func (b *Bundle) literal(v Value) store.Literal {
	if v.IsURI() {
		return store.URI(b.expand(v.AsURI()))
	}
	return v.Literal
}
