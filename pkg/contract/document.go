package contract

import "errors"

// Document wraps the raw contract payload and its origin. Exposing this type
// instead of kin-openapi structs keeps the public API decoupled from the
// parsing backend.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("contract: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("contract: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests
// and embedded fixtures.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Operation models the subset of contract operation metadata needed to build
// form models and drift checks.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	Extensions  map[string]any
	RequestBody Schema
	Responses   map[string]Schema
}

// NewOperation validates core fields and initialises response maps.
func NewOperation(id, method, path string, request Schema, responses map[string]Schema) (Operation, error) {
	if id == "" {
		return Operation{}, errors.New("contract: operation id is required")
	}
	if method == "" {
		return Operation{}, errors.New("contract: operation method is required")
	}
	if path == "" {
		return Operation{}, errors.New("contract: operation path is required")
	}
	if responses == nil {
		responses = make(map[string]Schema)
	}

	return Operation{
		ID:          id,
		Method:      method,
		Path:        path,
		RequestBody: request,
		Responses:   responses,
	}, nil
}

// MustNewOperation panics when construction fails, assisting fixtures.
func MustNewOperation(id, method, path string, request Schema, responses map[string]Schema) Operation {
	op, err := NewOperation(id, method, path, request, responses)
	if err != nil {
		panic(err)
	}
	return op
}

// HasResponse reports whether a response code has a schema registered.
func (op Operation) HasResponse(code string) bool {
	_, ok := op.Responses[code]
	return ok
}

// Schema represents request and response bodies and nested fields within an
// operation.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Required    []string
	Properties  map[string]Schema
	Items       *Schema
	Enum        []any
	Description string
	Default     any
	MinLength   *int
	MaxLength   *int
	Pattern     string
	Extensions  map[string]any
}

// Clone creates a deep copy of the schema tree to avoid accidental mutation.
func (s Schema) Clone() Schema {
	cloned := s
	if len(s.Required) > 0 {
		cloned.Required = append([]string(nil), s.Required...)
	}
	if len(s.Enum) > 0 {
		cloned.Enum = append([]any(nil), s.Enum...)
	}
	if len(s.Properties) > 0 {
		cloned.Properties = make(map[string]Schema, len(s.Properties))
		for k, v := range s.Properties {
			cloned.Properties[k] = v.Clone()
		}
	}
	if s.Items != nil {
		items := s.Items.Clone()
		cloned.Items = &items
	}
	if s.MinLength != nil {
		value := *s.MinLength
		cloned.MinLength = &value
	}
	if s.MaxLength != nil {
		value := *s.MaxLength
		cloned.MaxLength = &value
	}
	if len(s.Extensions) > 0 {
		cloned.Extensions = make(map[string]any, len(s.Extensions))
		for k, v := range s.Extensions {
			cloned.Extensions[k] = v
		}
	}
	return cloned
}

// Validate performs basic sanity checks useful for callers before building
// form models.
func (s Schema) Validate() error {
	if s.Type == "" && s.Ref == "" {
		return errors.New("contract: schema requires either type or ref")
	}
	if s.Type == "array" && s.Items == nil {
		return errors.New("contract: array schema must define items")
	}
	return nil
}
