// Package store provides the metadata lookups the port linter runs against:
// typed literals, the Store query interface and Graph, an in-memory triple
// graph implementing it.
package store

import "slices"

// Port identifies one port of a loaded plugin.
type Port struct {
	Subject string // graph node of the port
	Index   uint32
	Symbol  string
}

// Nodes is an ordered set of IRIs. Iteration order is the order in which the
// statements were added, so scans over it are deterministic.
type Nodes []string

// Contains reports whether iri is a member of the set.
func (n Nodes) Contains(iri string) bool {
	return slices.Contains(n, iri)
}

// Store answers typed queries about ports. Implementations may cache but the
// linter treats every call as potentially expensive.
type Store interface {
	// HasClass reports whether the port asserts rdf:type class.
	HasClass(port Port, class string) bool
	// Classes returns every class asserted on the port.
	Classes(port Port) Nodes
	// SubclassClosure returns every class that is transitively a subclass of
	// class. class itself is not included.
	SubclassClosure(class string) Nodes
	// HasProperty reports whether the port carries the given lv2:portProperty.
	HasProperty(port Port, prop string) bool
	// AllowedProperties returns the recognised lv2:PortProperty vocabulary.
	AllowedProperties() Nodes
	// PortProperties returns the lv2:portProperty values asserted on the port.
	PortProperties(port Port) Nodes
	// Literal fetches the first value of prop on the port.
	Literal(port Port, prop string) (Literal, bool)
}
