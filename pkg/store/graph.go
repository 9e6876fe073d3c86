package store

import (
	"sort"
	"sync"

	"github.com/ormasoftchile/lv2lint/pkg/vocab"
)

// Graph is an in-memory set of triples. It is safe for concurrent reads once
// populated; Add must not race with queries.
type Graph struct {
	// subject → predicate → objects, in insertion order
	index map[string]map[string][]Literal
	// predicate → subjects, in insertion order
	bypred map[string][]string

	mu      sync.Mutex
	closure map[string]Nodes
	allowed Nodes
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index:  make(map[string]map[string][]Literal),
		bypred: make(map[string][]string),
	}
}

// Add inserts the statement (subject, predicate, object). Duplicate
// statements are ignored.
func (g *Graph) Add(subject, predicate string, object Literal) {
	preds, ok := g.index[subject]
	if !ok {
		preds = make(map[string][]Literal)
		g.index[subject] = preds
	}
	for _, o := range preds[predicate] {
		if o == object {
			return
		}
	}
	if len(preds[predicate]) == 0 {
		g.bypred[predicate] = append(g.bypred[predicate], subject)
	}
	preds[predicate] = append(preds[predicate], object)

	g.mu.Lock()
	g.closure = nil
	g.allowed = nil
	g.mu.Unlock()
}

// Objects returns the values of predicate on subject.
func (g *Graph) Objects(subject, predicate string) []Literal {
	return g.index[subject][predicate]
}

// Subjects returns every subject carrying (predicate, object).
func (g *Graph) Subjects(predicate string, object Literal) []string {
	var out []string
	for _, s := range g.bypred[predicate] {
		for _, o := range g.index[s][predicate] {
			if o == object {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// Ports returns the ports linked to plugin via lv2:port, ordered by
// lv2:index.
func (g *Graph) Ports(plugin string) []Port {
	var ports []Port
	for _, o := range g.Objects(plugin, vocab.LV2PortLink) {
		subject := o.AsURI()
		if subject == "" {
			subject = o.AsString()
		}
		p := Port{Subject: subject}
		if v, ok := g.first(subject, vocab.LV2Index); ok {
			p.Index = uint32(v.AsInt())
		}
		if v, ok := g.first(subject, vocab.LV2Symbol); ok {
			p.Symbol = v.AsString()
		}
		ports = append(ports, p)
	}
	sort.SliceStable(ports, func(i, j int) bool { return ports[i].Index < ports[j].Index })
	return ports
}

func (g *Graph) first(subject, predicate string) (Literal, bool) {
	objs := g.index[subject][predicate]
	if len(objs) == 0 {
		return Literal{}, false
	}
	return objs[0], true
}

func (g *Graph) uris(subject, predicate string) Nodes {
	var out Nodes
	for _, o := range g.index[subject][predicate] {
		if o.IsURI() {
			out = append(out, o.AsURI())
		}
	}
	return out
}

// --- Store implementation ---

func (g *Graph) HasClass(port Port, class string) bool {
	return g.Classes(port).Contains(class)
}

func (g *Graph) Classes(port Port) Nodes {
	return g.uris(port.Subject, vocab.RDFType)
}

// SubclassClosure walks rdfs:subClassOf breadth-first. Results are memoized
// per class until the graph is modified.
func (g *Graph) SubclassClosure(class string) Nodes {
	g.mu.Lock()
	defer g.mu.Unlock()
	if c, ok := g.closure[class]; ok {
		return c
	}

	var out Nodes
	seen := map[string]bool{class: true}
	queue := []string{class}
	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]
		for _, sub := range g.Subjects(vocab.RDFSSubClassOf, URI(parent)) {
			if seen[sub] {
				continue
			}
			seen[sub] = true
			out = append(out, sub)
			queue = append(queue, sub)
		}
	}

	if g.closure == nil {
		g.closure = make(map[string]Nodes)
	}
	g.closure[class] = out
	return out
}

func (g *Graph) HasProperty(port Port, prop string) bool {
	return g.PortProperties(port).Contains(prop)
}

func (g *Graph) AllowedProperties() Nodes {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.allowed == nil {
		g.allowed = Nodes(g.Subjects(vocab.RDFType, URI(vocab.LV2PortProperty)))
		if g.allowed == nil {
			g.allowed = Nodes{}
		}
	}
	return g.allowed
}

func (g *Graph) PortProperties(port Port) Nodes {
	return g.uris(port.Subject, vocab.LV2PortProp)
}

func (g *Graph) Literal(port Port, prop string) (Literal, bool) {
	return g.first(port.Subject, prop)
}

var _ Store = (*Graph)(nil)
