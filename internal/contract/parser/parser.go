// Package parser implements the contract.Parser seam on top of kin-openapi.
package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgcontract "github.com/phishguard/guardkit/pkg/contract"
)

// Parser implements pkgcontract.Parser using kin-openapi.
type Parser struct {
	options pkgcontract.ParserOptions
}

var _ pkgcontract.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgcontract.ParserOptions) pkgcontract.Parser {
	return &Parser{options: options}
}

// Operations converts a Document into a map keyed by operationId.
func (p *Parser) Operations(ctx context.Context, doc pkgcontract.Document) (map[string]pkgcontract.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("contract parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.ResolveReferences,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("contract parser: load document: %w", err)
	}

	if spec.Paths == nil || spec.Paths.Len() == 0 {
		if !p.options.AllowPartialDocuments {
			return nil, errors.New("contract parser: document does not contain any paths")
		}
	}

	if err := p.resolveReferences(ctx, spec); err != nil {
		return nil, err
	}

	operations := make(map[string]pkgcontract.Operation)
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			p.collectOperation(ctx, operations, "GET", path, item.Get)
			p.collectOperation(ctx, operations, "PUT", path, item.Put)
			p.collectOperation(ctx, operations, "POST", path, item.Post)
			p.collectOperation(ctx, operations, "DELETE", path, item.Delete)
			p.collectOperation(ctx, operations, "PATCH", path, item.Patch)
			p.collectOperation(ctx, operations, "HEAD", path, item.Head)
			p.collectOperation(ctx, operations, "OPTIONS", path, item.Options)
			p.collectOperation(ctx, operations, "TRACE", path, item.Trace)
		}
	}

	if len(operations) == 0 && !p.options.AllowPartialDocuments {
		return nil, errors.New("contract parser: no operations extracted")
	}

	return operations, nil
}

func (p *Parser) resolveReferences(ctx context.Context, spec *openapi3.T) error {
	if !p.options.ResolveReferences {
		return nil
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("contract parser: validate: %w", err)
	}
	return nil
}

func (p *Parser) collectOperation(ctx context.Context, target map[string]pkgcontract.Operation, method, path string, operation *openapi3.Operation) {
	if ctx.Err() != nil {
		return
	}
	if operation == nil {
		return
	}
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}
	requestSchema := p.extractRequestSchema(operation.RequestBody)
	responseSchemas := p.extractResponseSchemas(operation.Responses)

	op, err := pkgcontract.NewOperation(opID, method, path, requestSchema, responseSchemas)
	if err != nil {
		// Invalid operations are skipped but noted by leaving them out.
		return
	}
	op.Summary = operation.Summary
	op.Description = operation.Description
	op.Extensions = extractExtensions(operation.Extensions)
	target[opID] = op
}

func (p *Parser) extractRequestSchema(requestBody *openapi3.RequestBodyRef) pkgcontract.Schema {
	if requestBody == nil {
		return pkgcontract.Schema{}
	}
	if requestBody.Value == nil {
		return pkgcontract.Schema{Ref: requestBody.Ref}
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok {
			return convertSchema(mt.Schema)
		}
	}
	for _, mt := range content {
		return convertSchema(mt.Schema)
	}
	return pkgcontract.Schema{}
}

func (p *Parser) extractResponseSchemas(responses *openapi3.Responses) map[string]pkgcontract.Schema {
	if responses == nil || responses.Len() == 0 {
		return nil
	}
	result := make(map[string]pkgcontract.Schema)
	for status, ref := range responses.Map() {
		if ref == nil {
			continue
		}
		var schema pkgcontract.Schema
		if ref.Value == nil {
			schema = pkgcontract.Schema{Ref: ref.Ref}
		} else {
			content := ref.Value.Content
			if len(content) == 0 {
				continue
			}
			if mt, ok := content["application/json"]; ok {
				schema = convertSchema(mt.Schema)
			} else {
				for _, mt := range content {
					schema = convertSchema(mt.Schema)
					break
				}
			}
			if schema.Description == "" && ref.Value.Description != nil {
				schema.Description = *ref.Value.Description
			}
		}
		if schema.Ref == "" && schema.Type == "" && schema.Items == nil && len(schema.Properties) == 0 {
			continue
		}
		result[status] = schema
	}
	return result
}

func convertSchema(ref *openapi3.SchemaRef) pkgcontract.Schema {
	if ref == nil {
		return pkgcontract.Schema{}
	}
	if ref.Value == nil {
		return pkgcontract.Schema{Ref: ref.Ref}
	}
	src := ref.Value
	schema := pkgcontract.Schema{
		Ref:         ref.Ref,
		Type:        firstSchemaType(src.Type),
		Format:      src.Format,
		Description: src.Description,
		Default:     src.Default,
	}

	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Enum...)
	}
	if len(src.Properties) > 0 {
		properties := make(map[string]pkgcontract.Schema, len(src.Properties))
		for name, property := range src.Properties {
			properties[name] = convertSchema(property)
		}
		schema.Properties = properties
	}
	if src.Items != nil {
		items := convertSchema(src.Items)
		schema.Items = &items
	}
	if src.MinLength != 0 {
		value := int(src.MinLength)
		schema.MinLength = &value
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		schema.MaxLength = &value
	}
	if src.Pattern != "" {
		schema.Pattern = src.Pattern
	}
	schema.Extensions = extractExtensions(src.Extensions)
	return schema
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}

// extractExtensions copies vendor extensions into the wrapper. Scalar values
// pass through untouched; maps are shallow-copied so later parses cannot see
// caller mutations.
func extractExtensions(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}

	result := make(map[string]any, len(raw))
	for key, value := range raw {
		if mapped, ok := value.(map[string]any); ok {
			clone := make(map[string]any, len(mapped))
			for k, v := range mapped {
				clone[k] = v
			}
			result[key] = clone
			continue
		}
		result[key] = value
	}
	return result
}
