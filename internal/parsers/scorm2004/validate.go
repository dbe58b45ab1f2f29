package scorm2004

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
)

// manifestShape is a JSON projection of the structural attributes the
// SCORM 2004 manifest MUST carry. jsonschema-go validates JSON Schema
// documents, not XSD, so the bundled and configured schemas are JSON
// Schemas over this four-field projection rather than XSD sets run
// through an XSD engine — there is no XSD validator anywhere in this
// codebase's reference corpus (see DESIGN.md). This is not equivalent to
// XSD validation: element order and attribute types are not checked.
type manifestShape struct {
	Identifier        string `json:"identifier"`
	Version           string `json:"version,omitempty"`
	OrganizationCount int    `json:"organizationCount"`
	ResourceCount     int    `json:"resourceCount"`
}

const defaultSchemaJSON = `{
  "type": "object",
  "required": ["identifier", "organizationCount", "resourceCount"],
  "properties": {
    "identifier": {"type": "string", "minLength": 1},
    "version": {"type": "string"},
    "organizationCount": {"type": "integer", "minimum": 1},
    "resourceCount": {"type": "integer", "minimum": 1}
  }
}`

// Validator wraps a compiled jsonschema-go schema. It is safe to reuse
// across manifests: compiled schemas are immutable lookup tables.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the SCORM 2004 manifest shape schema. schemaJSON
// may be empty, in which case the built-in default schema is used.
func NewValidator(schemaJSON string) (*Validator, error) {
	if schemaJSON == "" {
		schemaJSON = defaultSchemaJSON
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(schemaJSON), &raw); err != nil {
		return nil, err
	}
	schema, err := jsonschema.FromMap(raw)
	if err != nil {
		return nil, err
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, err
	}
	return &Validator{schema: resolved}, nil
}

// Validate checks identifier/version/organizationCount/resourceCount
// against the compiled schema, returning a SchemaValidationError naming
// every violation on failure.
func (v *Validator) Validate(path, identifier, version string, organizationCount, resourceCount int) error {
	shape := manifestShape{
		Identifier:        identifier,
		Version:           version,
		OrganizationCount: organizationCount,
		ResourceCount:     resourceCount,
	}
	data, err := json.Marshal(shape)
	if err != nil {
		return err
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return err
	}
	if err := v.schema.Validate(instance); err != nil {
		return elmerrors.NewSchemaValidationError(path, []string{err.Error()})
	}
	return nil
}
