// Package schema defines the lv2lint bundle document: one plugin, its ports
// and any extra vocabulary, written in YAML. It provides strict parsing, a
// three-phase validation pipeline and conversion into a metadata graph.
package schema

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// APIVersion is the only accepted bundle apiVersion.
const APIVersion = "lv2lint/v0"

// Bundle is the top-level document.
type Bundle struct {
	APIVersion string            `yaml:"apiVersion"           json:"apiVersion" jsonschema:"enum=lv2lint/v0"`
	Prefixes   map[string]string `yaml:"prefixes,omitempty"   json:"prefixes,omitempty"`
	Plugin     Plugin            `yaml:"plugin"               json:"plugin"`
	Vocabulary *Vocabulary       `yaml:"vocabulary,omitempty" json:"vocabulary,omitempty"`
}

// Plugin describes the plugin under test.
type Plugin struct {
	URI   string `yaml:"uri"             json:"uri"             jsonschema:"minLength=1"`
	Name  string `yaml:"name,omitempty"  json:"name,omitempty"`
	Ports []Port `yaml:"ports,omitempty" json:"ports,omitempty"`
}

// Port is one port description. Default, Minimum, Maximum, Comment and Group
// map to lv2:default, lv2:minimum, lv2:maximum, rdfs:comment and pg:group;
// Values holds any other statements keyed by predicate.
type Port struct {
	Index      uint32           `yaml:"index"                json:"index"`
	Symbol     string           `yaml:"symbol"               json:"symbol"               jsonschema:"minLength=1"`
	Name       string           `yaml:"name,omitempty"       json:"name,omitempty"`
	Classes    []string         `yaml:"classes,omitempty"    json:"classes,omitempty"`
	Properties []string         `yaml:"properties,omitempty" json:"properties,omitempty"`
	Default    *Value           `yaml:"default,omitempty"    json:"default,omitempty"`
	Minimum    *Value           `yaml:"minimum,omitempty"    json:"minimum,omitempty"`
	Maximum    *Value           `yaml:"maximum,omitempty"    json:"maximum,omitempty"`
	Comment    *Value           `yaml:"comment,omitempty"    json:"comment,omitempty"`
	Group      *Value           `yaml:"group,omitempty"      json:"group,omitempty"`
	Values     map[string]Value `yaml:"values,omitempty"     json:"values,omitempty"`
}

// Vocabulary extends the built-in LV2 class and port property vocabulary.
type Vocabulary struct {
	Classes        []ClassDef `yaml:"classes,omitempty"        json:"classes,omitempty"`
	PortProperties []string   `yaml:"portProperties,omitempty" json:"portProperties,omitempty"`
}

// ClassDef declares uri as a subclass of SubClassOf.
type ClassDef struct {
	URI        string `yaml:"uri"        json:"uri"        jsonschema:"minLength=1"`
	SubClassOf string `yaml:"subClassOf" json:"subClassOf" jsonschema:"minLength=1"`
}

// LoadFile reads and structurally decodes a bundle YAML file.
func LoadFile(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bundle: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a bundle from r, rejecting unknown fields.
func Load(r io.Reader) (*Bundle, error) {
	var b Bundle
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("structural decode: %w", err)
	}
	return &b, nil
}

// LoadVocabulary decodes a standalone vocabulary document.
func LoadVocabulary(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode vocabulary: %w", err)
	}
	return &v, nil
}
