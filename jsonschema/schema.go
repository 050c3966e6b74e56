package jsonschema

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// DraftID is the draft-07 meta-schema identifier emitted at document roots.
const DraftID = "http://json-schema.org/draft-07/schema#"

// Schema is the canonical draft-07 document representation. Keys are
// restricted to the supported subset; everything else travels in Extra and
// is emitted verbatim. A Schema with Bool set represents the boolean-form
// schemas `true`/`false` and ignores every other field.
type Schema struct {
	// Root-only
	SchemaID    string             `json:"$schema,omitempty"`
	Definitions map[string]*Schema `json:"definitions,omitempty"`

	// Core
	Type  string `json:"type,omitempty"`
	Enum  []any  `json:"enum,omitempty"`
	Const *any   `json:"const,omitempty"` // pointer so const:null survives
	Ref   string `json:"$ref,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"` // bool or *Schema

	// Array
	Items           any `json:"items,omitempty"`           // *Schema or []*Schema
	AdditionalItems any `json:"additionalItems,omitempty"` // bool or *Schema

	// Combinators
	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	If    *Schema   `json:"if,omitempty"`
	Then  *Schema   `json:"then,omitempty"`
	Else  *Schema   `json:"else,omitempty"`

	// Annotations
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Extra carries keywords with no structural meaning for projection
	// (pattern, minLength, default, ...). Emitted as-is.
	Extra map[string]any `json:"-"`

	// Bool marks the boolean-form schema.
	Bool *bool `json:"-"`
}

// True returns the boolean-form schema accepting everything.
func True() *Schema { b := true; return &Schema{Bool: &b} }

// False returns the boolean-form schema accepting nothing.
func False() *Schema { b := false; return &Schema{Bool: &b} }

// MarshalJSON emits the document deterministically: the object form is
// assembled into a map and delegated to go-json, which sorts keys.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	if s.Bool != nil {
		return json.Marshal(*s.Bool)
	}
	return json.Marshal(s.toMap())
}

func (s *Schema) toMap() map[string]any {
	m := make(map[string]any)
	for k, v := range s.Extra {
		m[k] = v
	}
	if s.SchemaID != "" {
		m["$schema"] = s.SchemaID
	}
	if len(s.Definitions) > 0 {
		m["definitions"] = s.Definitions
	}
	if s.Type != "" {
		m["type"] = s.Type
	}
	if len(s.Enum) > 0 {
		m["enum"] = s.Enum
	}
	if s.Const != nil {
		m["const"] = *s.Const
	}
	if s.Ref != "" {
		m["$ref"] = s.Ref
	}
	if len(s.Properties) > 0 {
		m["properties"] = s.Properties
	}
	if len(s.Required) > 0 {
		m["required"] = s.Required
	}
	if s.AdditionalProperties != nil {
		m["additionalProperties"] = s.AdditionalProperties
	}
	if s.Items != nil {
		m["items"] = s.Items
	}
	if s.AdditionalItems != nil {
		m["additionalItems"] = s.AdditionalItems
	}
	if len(s.AllOf) > 0 {
		m["allOf"] = s.AllOf
	}
	if len(s.AnyOf) > 0 {
		m["anyOf"] = s.AnyOf
	}
	if len(s.OneOf) > 0 {
		m["oneOf"] = s.OneOf
	}
	if s.If != nil {
		m["if"] = s.If
	}
	if s.Then != nil {
		m["then"] = s.Then
	}
	if s.Else != nil {
		m["else"] = s.Else
	}
	if s.Title != "" {
		m["title"] = s.Title
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	return m
}

// UnmarshalJSON accepts both the object form and the boolean form. Numbers
// are decoded as json.Number so values survive re-encoding unchanged.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	parsed, err := FromAny(v)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

// FromAny converts a generically decoded JSON value (bool or
// map[string]any) into a Schema. Nested schemas are converted recursively;
// unknown keys land in Extra.
func FromAny(v any) (*Schema, error) {
	switch t := v.(type) {
	case bool:
		b := t
		return &Schema{Bool: &b}, nil
	case map[string]any:
		return fromMap(t)
	default:
		return nil, fmt.Errorf("jsonschema: schema must be an object or a boolean, got %T", v)
	}
}

func fromMap(m map[string]any) (*Schema, error) {
	s := &Schema{}
	for k, v := range m {
		var err error
		switch k {
		case "$schema":
			s.SchemaID, err = asString(k, v)
		case "definitions":
			s.Definitions, err = asSchemaMap(k, v)
		case "type":
			s.Type, err = asString(k, v)
		case "enum":
			vals, ok := v.([]any)
			if !ok {
				err = fmt.Errorf("jsonschema: %q must be an array", k)
				break
			}
			s.Enum = vals
		case "const":
			c := v
			s.Const = &c
		case "$ref":
			s.Ref, err = asString(k, v)
		case "properties":
			s.Properties, err = asSchemaMap(k, v)
		case "required":
			vals, ok := v.([]any)
			if !ok {
				err = fmt.Errorf("jsonschema: %q must be an array", k)
				break
			}
			names := make([]string, 0, len(vals))
			for _, rv := range vals {
				rs, ok := rv.(string)
				if !ok {
					err = fmt.Errorf("jsonschema: %q entries must be strings", k)
					break
				}
				names = append(names, rs)
			}
			if err == nil {
				s.Required = names
			}
		case "additionalProperties":
			s.AdditionalProperties, err = asBoolOrSchema(k, v)
		case "items":
			if list, ok := v.([]any); ok {
				schemas := make([]*Schema, 0, len(list))
				for _, iv := range list {
					is, convErr := FromAny(iv)
					if convErr != nil {
						err = convErr
						break
					}
					schemas = append(schemas, is)
				}
				if err == nil {
					s.Items = schemas
				}
				break
			}
			s.Items, err = FromAny(v)
		case "additionalItems":
			s.AdditionalItems, err = asBoolOrSchema(k, v)
		case "allOf":
			s.AllOf, err = asSchemaList(k, v)
		case "anyOf":
			s.AnyOf, err = asSchemaList(k, v)
		case "oneOf":
			s.OneOf, err = asSchemaList(k, v)
		case "if":
			s.If, err = FromAny(v)
		case "then":
			s.Then, err = FromAny(v)
		case "else":
			s.Else, err = FromAny(v)
		case "title":
			s.Title, err = asString(k, v)
		case "description":
			s.Description, err = asString(k, v)
		default:
			if s.Extra == nil {
				s.Extra = map[string]any{}
			}
			s.Extra[k] = v
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("jsonschema: %q must be a string", key)
	}
	return s, nil
}

func asSchemaMap(key string, v any) (map[string]*Schema, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("jsonschema: %q must be an object", key)
	}
	out := make(map[string]*Schema, len(m))
	for name, sv := range m {
		s, err := FromAny(sv)
		if err != nil {
			return nil, err
		}
		out[name] = s
	}
	return out, nil
}

func asSchemaList(key string, v any) ([]*Schema, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("jsonschema: %q must be an array", key)
	}
	out := make([]*Schema, 0, len(list))
	for _, sv := range list {
		s, err := FromAny(sv)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func asBoolOrSchema(key string, v any) (any, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	if _, ok := v.(map[string]any); ok {
		return FromAny(v)
	}
	return nil, fmt.Errorf("jsonschema: %q must be a boolean or an object", key)
}
