package formmodel

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	pkgcontract "github.com/phishguard/guardkit/pkg/contract"
)

const orderExtensionKey = "x-order"

// Builder converts contract operations into form descriptors.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	return &Builder{opts: opts}
}

// Build transforms a contract operation into a Form. The request body must
// be a flat object schema: forms here are plain field lists, so nested
// objects and arrays are rejected rather than flattened.
func (b *Builder) Build(op pkgcontract.Operation) (Form, error) {
	if err := validateOperation(op); err != nil {
		return Form{}, err
	}

	form := Form{
		OperationID: op.ID,
		Endpoint:    op.Path,
		Method:      strings.ToUpper(op.Method),
		Title:       op.Summary,
		Description: op.Description,
	}

	schema := op.RequestBody
	requiredSet := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		requiredSet[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		propSchema := schema.Properties[name]
		_, isRequired := requiredSet[name]
		field, err := b.fieldFromSchema(name, propSchema, isRequired)
		if err != nil {
			return Form{}, fmt.Errorf("formmodel: operation %s: %w", op.ID, err)
		}
		fields = append(fields, field)
	}

	// Explicit x-order wins; fields without one keep their alphabetical
	// position after all ordered fields.
	sort.SliceStable(fields, func(i, j int) bool {
		return sortOrder(fields[i]) < sortOrder(fields[j])
	})
	form.Fields = fields

	return form, nil
}

func validateOperation(op pkgcontract.Operation) error {
	schema := op.RequestBody
	if schema.Ref != "" && schema.Type == "" && len(schema.Properties) == 0 {
		return fmt.Errorf("formmodel: operation %s: request schema reference %s is unresolved", op.ID, schema.Ref)
	}
	if schema.Type != "" && schema.Type != "object" {
		return fmt.Errorf("formmodel: operation %s: request schema is %s, want object", op.ID, schema.Type)
	}
	if len(schema.Properties) == 0 {
		return fmt.Errorf("formmodel: operation %s: request schema has no properties", op.ID)
	}
	return nil
}

func (b *Builder) fieldFromSchema(name string, schema pkgcontract.Schema, required bool) (Field, error) {
	kind, err := kindOf(name, schema)
	if err != nil {
		return Field{}, err
	}

	field := Field{
		Name:        name,
		Kind:        kind,
		Label:       b.opts.Labeler(name),
		Description: schema.Description,
		Required:    required,
		Default:     schema.Default,
		Pattern:     schema.Pattern,
		Order:       orderOf(schema.Extensions),
	}
	if schema.MinLength != nil {
		value := *schema.MinLength
		field.MinLength = &value
	}
	if schema.MaxLength != nil {
		value := *schema.MaxLength
		field.MaxLength = &value
	}
	return field, nil
}

func kindOf(name string, schema pkgcontract.Schema) (Kind, error) {
	switch schema.Type {
	case "object", "array":
		return "", fmt.Errorf("field %s: nested %s schemas are not supported", name, schema.Type)
	case "boolean":
		return KindCheckbox, nil
	case "string", "", "integer", "number":
		// Numeric inputs render as free text; the validation engine owns
		// interpretation.
		switch schema.Format {
		case "email":
			return KindEmail, nil
		case "password":
			return KindPassword, nil
		default:
			return KindText, nil
		}
	default:
		return "", fmt.Errorf("field %s: unsupported schema type %s", name, schema.Type)
	}
}

// orderOf extracts the x-order extension. JSON-decoded documents carry
// numbers as float64; hand-built schemas may use ints or strings.
func orderOf(ext map[string]any) int {
	switch v := ext[orderExtensionKey].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}

func sortOrder(f Field) int {
	if f.Order == 0 {
		return math.MaxInt
	}
	return f.Order
}
