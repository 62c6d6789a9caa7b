// Package schema builds JSON Schemas and validates decoded documents against them.
//
// # Quick Start
//
//	s := schema.MustCompile(schema.Object(map[string]*schema.Property{
//	    "name":       schema.String("Command name").Pattern(`^[a-z0-9_]+:[a-z0-9_]+$`),
//	    "permission": schema.String("Permission level").Enum("any", "admin"),
//	}, "name"))
//
//	var doc any
//	_ = yaml.Unmarshal(data, &doc)
//	if err := s.ValidateValue(doc); err != nil {
//	    return err
//	}
//
// Validation errors are returned as *ValidationError.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a raw JSON Schema together with its compiled validator.
type Schema struct {
	raw      map[string]any
	compiled *jsonschema.Schema
}

// Raw returns the map the schema was compiled from.
func (s *Schema) Raw() map[string]any {
	if s == nil {
		return nil
	}
	return s.raw
}

// Validate validates a JSON-shaped map against the schema. A nil schema accepts everything.
func (s *Schema) Validate(data map[string]any) error {
	if data == nil {
		return s.ValidateValue(map[string]any{})
	}
	return s.ValidateValue(data)
}

// ValidateValue validates any value that encoding/json can marshal: YAML-decoded maps,
// structs with json tags, slices. The value is normalised through JSON first so that Go
// integer and map types validate the same way their JSON form would.
func (s *Schema) ValidateValue(v any) error {
	if s == nil || s.compiled == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse value: %w", err)
	}
	if err := s.compiled.Validate(inst); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// ValidationError wraps a JSON Schema validation error.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Compile compiles raw into a Schema. A nil raw yields a nil Schema, which accepts everything.
func Compile(raw map[string]any) (*Schema, error) {
	if raw == nil {
		return nil, nil
	}

	schemaJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	schemaData, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaData); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Schema{raw: raw, compiled: compiled}, nil
}

// MustCompile is like Compile but panics on error.
// Use this for schemas defined at init time.
func MustCompile(raw map[string]any) *Schema {
	s, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// -----------------------------------------------------------------------------
// Object Builders
// -----------------------------------------------------------------------------

// Object creates an object schema with the given properties.
// Pass property names as variadic arguments to mark them as required.
//
// Example:
//
//	schema.Object(map[string]*schema.Property{
//	    "name":        schema.String("Command name"),
//	    "description": schema.String("Help text"),
//	}, "name")
func Object(properties map[string]*Property, required ...string) map[string]any {
	props := make(map[string]any, len(properties))
	for name, prop := range properties {
		props[name] = prop.build()
	}

	obj := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		obj["required"] = required
	}
	return obj
}

// Closed forbids properties not listed in obj. It modifies and returns obj.
func Closed(obj map[string]any) map[string]any {
	obj["additionalProperties"] = false
	return obj
}

// When adds a conditional to obj: values matching cond must also match then.
// It modifies and returns obj.
//
// Example:
//
//	// Enum parameters need at least one value.
//	schema.When(param,
//	    schema.Object(map[string]*schema.Property{"type": schema.String("").Const("enum")}, "type"),
//	    schema.Object(map[string]*schema.Property{"values": schema.Array("", itemSchema).MinItems(1)}, "values"),
//	)
func When(obj, cond, then map[string]any) map[string]any {
	obj["allOf"] = append(allOf(obj), map[string]any{"if": cond, "then": then})
	return obj
}

func allOf(obj map[string]any) []any {
	existing, _ := obj["allOf"].([]any)
	return existing
}

// -----------------------------------------------------------------------------
// Property Builders
// -----------------------------------------------------------------------------

// Property is one property of an object schema.
type Property struct {
	typ         string
	description string
	enum        []any
	constant    any
	minLength   *int
	maxLength   *int
	minItems    *int
	uniqueItems bool
	pattern     string
	items       map[string]any
}

func (p *Property) build() map[string]any {
	m := map[string]any{}

	if p.typ != "" {
		m["type"] = p.typ
	}
	if p.description != "" {
		m["description"] = p.description
	}
	if len(p.enum) > 0 {
		m["enum"] = p.enum
	}
	if p.constant != nil {
		m["const"] = p.constant
	}
	if p.minLength != nil {
		m["minLength"] = *p.minLength
	}
	if p.maxLength != nil {
		m["maxLength"] = *p.maxLength
	}
	if p.minItems != nil {
		m["minItems"] = *p.minItems
	}
	if p.uniqueItems {
		m["uniqueItems"] = true
	}
	if p.pattern != "" {
		m["pattern"] = p.pattern
	}
	if p.items != nil {
		m["items"] = p.items
	}
	return m
}

// String creates a string property.
//
// Example:
//
//	schema.String("Command name").Pattern(`^[a-z]+:[a-z]+$`)
//	schema.String("Description").MaxLength(256)
//	schema.String("Permission").Enum("any", "admin", "host")
func String(description string) *Property {
	return &Property{typ: "string", description: description}
}

// Boolean creates a boolean property.
func Boolean(description string) *Property {
	return &Property{typ: "boolean", description: description}
}

// Array creates an array property whose elements match items.
//
// Example:
//
//	schema.Array("Enum values", map[string]any{"type": "string"}).MinItems(1)
//	schema.Array("Parameters", schema.Object(map[string]*schema.Property{
//	    "name": schema.String("Parameter name"),
//	}, "name"))
func Array(description string, items map[string]any) *Property {
	return &Property{typ: "array", description: description, items: items}
}

// Enum sets the allowed values of the property.
func (p *Property) Enum(values ...any) *Property {
	p.enum = values
	return p
}

// Const requires the property to equal value.
func (p *Property) Const(value any) *Property {
	p.constant = value
	return p
}

// MinLength sets the minimum length of a string property.
func (p *Property) MinLength(min int) *Property {
	p.minLength = &min
	return p
}

// MaxLength sets the maximum length of a string property.
func (p *Property) MaxLength(max int) *Property {
	p.maxLength = &max
	return p
}

// MinItems sets the minimum number of elements of an array property.
func (p *Property) MinItems(min int) *Property {
	p.minItems = &min
	return p
}

// Unique requires the elements of an array property to be distinct.
func (p *Property) Unique() *Property {
	p.uniqueItems = true
	return p
}

// Pattern sets a regular expression the string property must match.
//
// Example:
//
//	schema.String("Id").Pattern(`^[a-z0-9_]+:[a-z0-9_]+$`)
func (p *Property) Pattern(pattern string) *Property {
	p.pattern = pattern
	return p
}
