package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/ormasoftchile/lv2lint/pkg/vocab"
	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidationError represents one error or warning raised while loading a
// bundle.
type ValidationError struct {
	Phase    string `json:"phase"` // structural, semantic, domain
	Path     string `json:"path"`  // JSON-path-like location (e.g. "plugin.ports[0].symbol")
	Message  string `json:"message"`
	Severity string `json:"severity"` // error, warning
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s at %s", e.Phase, e.Message, e.Path)
	}
	return fmt.Sprintf("[%s] %s", e.Phase, e.Message)
}

func errorf(phase, path, msg string, args ...any) *ValidationError {
	return &ValidationError{Phase: phase, Path: path, Message: fmt.Sprintf(msg, args...), Severity: "error"}
}

func warningf(phase, path, msg string, args ...any) *ValidationError {
	return &ValidationError{Phase: phase, Path: path, Message: fmt.Sprintf(msg, args...), Severity: "warning"}
}

// HasErrors reports whether any entry has error severity.
func HasErrors(errs []*ValidationError) bool {
	for _, e := range errs {
		if e.Severity == "error" {
			return true
		}
	}
	return false
}

// ValidateFile runs the full pipeline on a bundle file:
//
//  1. structural: strict YAML decode
//  2. semantic: JSON Schema validation
//  3. domain: hand-coded consistency rules
//
// Domain rules only run when the earlier phases produced no errors.
func ValidateFile(path string) (*Bundle, []*ValidationError) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, []*ValidationError{errorf("structural", "", "failed to load: %s", err)}
	}
	return b, ValidateBundle(b)
}

// ValidateBundle runs the semantic and domain phases on a loaded bundle.
func ValidateBundle(b *Bundle) []*ValidationError {
	errs := validateSemantic(b)
	if HasErrors(errs) {
		return errs
	}
	return append(errs, validateDomain(b)...)
}

func validateSemantic(b *Bundle) []*ValidationError {
	data, err := json.Marshal(b)
	if err != nil {
		return []*ValidationError{errorf("semantic", "", "marshal for schema validation: %v", err)}
	}
	schemaJSON, err := GenerateJSONSchema()
	if err != nil {
		return []*ValidationError{errorf("semantic", "", "generate schema: %v", err)}
	}

	schemaDoc, err := sjsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return []*ValidationError{errorf("semantic", "", "unmarshal schema: %v", err)}
	}
	c := sjsonschema.NewCompiler()
	if err := c.AddResource(SchemaID, schemaDoc); err != nil {
		return []*ValidationError{errorf("semantic", "", "add schema resource: %v", err)}
	}
	sch, err := c.Compile(SchemaID)
	if err != nil {
		return []*ValidationError{errorf("semantic", "", "compile schema: %v", err)}
	}

	doc, err := sjsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return []*ValidationError{errorf("semantic", "", "unmarshal document: %v", err)}
	}
	if err := sch.Validate(doc); err != nil {
		ve, ok := err.(*sjsonschema.ValidationError)
		if !ok {
			return []*ValidationError{errorf("semantic", "", "%s", err)}
		}
		var errs []*ValidationError
		for _, cause := range flattenValidationErrors(ve) {
			errs = append(errs, errorf("semantic", strings.Join(cause.InstanceLocation, "."), "%v", cause.ErrorKind))
		}
		return errs
	}
	return nil
}

// flattenValidationErrors recursively collects all leaf validation errors.
func flattenValidationErrors(ve *sjsonschema.ValidationError) []*sjsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*sjsonschema.ValidationError{ve}
	}
	var flat []*sjsonschema.ValidationError
	for _, cause := range ve.Causes {
		flat = append(flat, flattenValidationErrors(cause)...)
	}
	return flat
}

// symbolRe is the LV2 port symbol grammar.
var symbolRe = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

func validateDomain(b *Bundle) []*ValidationError {
	var errs []*ValidationError

	if b.APIVersion != APIVersion {
		errs = append(errs, errorf("domain", "apiVersion", "expected %q, got %q", APIVersion, b.APIVersion))
	}

	indexes := map[uint32]string{}
	symbols := map[string]string{}
	for i, p := range b.Plugin.Ports {
		path := fmt.Sprintf("plugin.ports[%d]", i)
		if prev, ok := indexes[p.Index]; ok {
			errs = append(errs, errorf("domain", path+".index", "duplicate port index %d (first at %s)", p.Index, prev))
		} else {
			indexes[p.Index] = path
		}
		if prev, ok := symbols[p.Symbol]; ok {
			errs = append(errs, errorf("domain", path+".symbol", "duplicate port symbol %q (first at %s)", p.Symbol, prev))
		} else {
			symbols[p.Symbol] = path
		}
		if !symbolRe.MatchString(p.Symbol) {
			errs = append(errs, warningf("domain", path+".symbol", "symbol %q is not a valid LV2 symbol", p.Symbol))
		}

		for j, c := range p.Classes {
			errs = append(errs, checkName(b, c, fmt.Sprintf("%s.classes[%d]", path, j))...)
		}
		for j, c := range p.Properties {
			errs = append(errs, checkName(b, c, fmt.Sprintf("%s.properties[%d]", path, j))...)
		}
		errs = append(errs, checkValues(b, &p, path)...)
	}

	for i := range len(indexes) {
		if _, ok := indexes[uint32(i)]; !ok {
			errs = append(errs, warningf("domain", "plugin.ports", "port indexes are not contiguous: %d is missing", i))
			break
		}
	}

	if v := b.Vocabulary; v != nil {
		for i, c := range v.Classes {
			path := fmt.Sprintf("vocabulary.classes[%d]", i)
			errs = append(errs, checkName(b, c.URI, path+".uri")...)
			errs = append(errs, checkName(b, c.SubClassOf, path+".subClassOf")...)
		}
		for i, p := range v.PortProperties {
			errs = append(errs, checkName(b, p, fmt.Sprintf("vocabulary.portProperties[%d]", i))...)
		}
	}
	return errs
}

// checkName reports compact names whose prefix neither the bundle nor the
// built-in table declares.
func checkName(b *Bundle, name, path string) []*ValidationError {
	if vocab.Expand(name, b.Prefixes) != name {
		return nil
	}
	if strings.Contains(name, "://") || strings.HasPrefix(name, "urn:") {
		return nil
	}
	prefix, _, ok := strings.Cut(name, ":")
	if !ok {
		return []*ValidationError{errorf("domain", path, "%q is neither an IRI nor a prefixed name", name)}
	}
	return []*ValidationError{errorf("domain", path, "unknown prefix %q in %q", prefix, name)}
}

// checkValues rejects values keys that expand to a predicate the port
// already sets, either through a dedicated field or another key.
func checkValues(b *Bundle, p *Port, path string) []*ValidationError {
	var errs []*ValidationError
	seen := map[string]string{
		vocab.LV2Index:  "index",
		vocab.LV2Symbol: "symbol",
	}
	if p.Name != "" {
		seen[vocab.LV2Name] = "name"
	}
	for _, f := range p.fixedValues() {
		if f.value != nil {
			seen[f.predicate] = f.field
		}
	}
	for _, key := range slices.Sorted(maps.Keys(p.Values)) {
		keyPath := path + ".values." + key
		if nameErrs := checkName(b, key, keyPath); len(nameErrs) > 0 {
			errs = append(errs, nameErrs...)
			continue
		}
		pred := b.expand(key)
		if prev, ok := seen[pred]; ok {
			errs = append(errs, errorf("domain", keyPath, "predicate <%s> is already set by %s", pred, prev))
			continue
		}
		seen[pred] = "values." + key
	}
	return errs
}
