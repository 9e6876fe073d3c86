package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/ormasoftchile/lv2lint/pkg/store"
	"gopkg.in/yaml.v3"
)

// Value is a typed literal in a bundle. The YAML scalar type selects the
// literal kind: integers, floats and booleans map directly, strings are
// string literals unless written as <iri> or tagged !uri.
type Value struct {
	store.Literal
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: literal must be a scalar", node.Line)
	}
	if node.Tag == "!uri" {
		v.Literal = store.URI(node.Value)
		return nil
	}
	switch node.ShortTag() {
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return err
		}
		v.Literal = store.Int(i)
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		v.Literal = store.Float(f)
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		v.Literal = store.Bool(b)
	case "!!str":
		if iri, ok := bracketed(node.Value); ok {
			v.Literal = store.URI(iri)
		} else {
			v.Literal = store.String(node.Value)
		}
	default:
		return fmt.Errorf("line %d: unsupported literal %s", node.Line, node.ShortTag())
	}
	return nil
}

// MarshalJSON encodes the literal as a JSON scalar; IRIs keep their angle
// brackets so they round-trip.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind() {
	case store.KindInt:
		return json.Marshal(v.AsInt())
	case store.KindFloat:
		return json.Marshal(v.AsFloat())
	case store.KindBool:
		return json.Marshal(v.AsBool())
	case store.KindURI:
		return json.Marshal("<" + v.AsURI() + ">")
	default:
		return json.Marshal(v.AsString())
	}
}

// JSONSchema describes Value for the bundle schema.
func (Value) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			{Type: "number"},
			{Type: "boolean"},
			{Type: "string"},
		},
	}
}

func bracketed(s string) (string, bool) {
	if len(s) > 2 && strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		return s[1 : len(s)-1], true
	}
	return "", false
}
