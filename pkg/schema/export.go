package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaID is the $id of the generated bundle schema.
const SchemaID = "https://github.com/ormasoftchile/lv2lint/schemas/bundle-v0.json"

// GenerateJSONSchema produces a JSON Schema Draft 2020-12 document from the
// Bundle struct using invopop/jsonschema.
func GenerateJSONSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = false

	s := r.Reflect(&Bundle{})
	s.ID = SchemaID
	s.Title = "lv2lint bundle v0"
	s.Description = "Schema for lv2lint plugin bundle YAML documents (Draft 2020-12)"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
