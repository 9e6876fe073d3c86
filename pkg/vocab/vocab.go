// Package vocab declares the RDF vocabulary terms lv2lint queries when
// validating plugin ports, plus the built-in LV2 core class and port
// property vocabulary.
package vocab

import (
	_ "embed"
	"strings"
)

// Namespaces.
const (
	NSRDF   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS  = "http://www.w3.org/2000/01/rdf-schema#"
	NSLV2   = "http://lv2plug.in/ns/lv2core#"
	NSAtom  = "http://lv2plug.in/ns/ext/atom#"
	NSEvent = "http://lv2plug.in/ns/ext/event#"
	NSPG    = "http://lv2plug.in/ns/ext/port-groups#"
	NSPProp = "http://lv2plug.in/ns/ext/port-props#"
	NSMIDI  = "http://lv2plug.in/ns/ext/midi#"
)

// rdf / rdfs terms.
const (
	RDFType        = NSRDF + "type"
	RDFSSubClassOf = NSRDFS + "subClassOf"
	RDFSComment    = NSRDFS + "comment"
	RDFSLabel      = NSRDFS + "label"
)

// LV2 core terms.
const (
	LV2Port         = NSLV2 + "Port"
	LV2InputPort    = NSLV2 + "InputPort"
	LV2OutputPort   = NSLV2 + "OutputPort"
	LV2ControlPort  = NSLV2 + "ControlPort"
	LV2AudioPort    = NSLV2 + "AudioPort"
	LV2CVPort       = NSLV2 + "CVPort"
	LV2Plugin       = NSLV2 + "Plugin"
	LV2PortProperty = NSLV2 + "PortProperty"
	LV2PortProp     = NSLV2 + "portProperty"
	LV2Integer      = NSLV2 + "integer"
	LV2Toggled      = NSLV2 + "toggled"
	LV2Default      = NSLV2 + "default"
	LV2Minimum      = NSLV2 + "minimum"
	LV2Maximum      = NSLV2 + "maximum"
	LV2PortLink     = NSLV2 + "port"
	LV2Index        = NSLV2 + "index"
	LV2Symbol       = NSLV2 + "symbol"
	LV2Name         = NSLV2 + "name"
)

// Extension terms.
const (
	AtomAtomPort   = NSAtom + "AtomPort"
	EventEventPort = NSEvent + "EventPort"
	PGGroup        = NSPG + "group"
)

// Prefixes maps the compact prefixes accepted in bundle documents to their
// namespace IRIs.
var Prefixes = map[string]string{
	"rdf":    NSRDF,
	"rdfs":   NSRDFS,
	"lv2":    NSLV2,
	"atom":   NSAtom,
	"ev":     NSEvent,
	"event":  NSEvent,
	"pg":     NSPG,
	"pprops": NSPProp,
	"midi":   NSMIDI,
}

// Expand turns a compact name such as "lv2:ControlPort" into a full IRI using
// the built-in prefixes overlaid with extra. Names that already look like
// IRIs, or whose prefix is unknown, are returned unchanged.
func Expand(name string, extra map[string]string) string {
	if strings.Contains(name, "://") || strings.HasPrefix(name, "urn:") {
		return name
	}
	prefix, local, ok := strings.Cut(name, ":")
	if !ok {
		return name
	}
	if ns, ok := extra[prefix]; ok {
		return ns + local
	}
	if ns, ok := Prefixes[prefix]; ok {
		return ns + local
	}
	return name
}

// Builtin is the LV2 core vocabulary document, in the same YAML shape as the
// vocabulary section of a bundle.
//
//go:embed lv2core.yaml
var Builtin []byte
