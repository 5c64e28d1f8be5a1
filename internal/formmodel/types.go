// Package formmodel builds the typed form descriptors consumed by prompt
// flows and renderers. The public adapter in pkg/formmodel re-exports the
// types defined here.
package formmodel

// Kind is the input modality of a form field.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindCheckbox Kind = "checkbox"
)

// Field models an individual input inside a form.
type Field struct {
	Name        string `json:"name"`
	Kind        Kind   `json:"kind"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
	Default     any    `json:"default,omitempty"`
	MinLength   *int   `json:"minLength,omitempty"`
	MaxLength   *int   `json:"maxLength,omitempty"`
	Pattern     string `json:"pattern,omitempty"`
	Order       int    `json:"order,omitempty"`
}

// Form is the top-level descriptor prompt flows and renderers consume.
type Form struct {
	OperationID string  `json:"operationId"`
	Endpoint    string  `json:"endpoint"`
	Method      string  `json:"method"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields"`
}

// Field returns the named field and whether it exists.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
