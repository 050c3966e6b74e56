package jsonshape

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	js "github.com/reoring/jsonshape/jsonschema"
)

// FromJSON builds a node tree from a literal draft-07-subset schema
// document. A builder-built tree and its literal equivalent serialize to
// the same canonical document. Unsupported structural keywords are
// rejected with *DefinitionError; runtime-only keywords are carried as
// opaque metadata and enforced by the validation engine only.
func FromJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, asSyntaxError(err)
	}
	return FromValue(v)
}

// FromYAML is FromJSON for YAML input. The decoded document is normalized
// to JSON-shaped maps first; non-string keys are dropped.
func FromYAML(data []byte) (*Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, &SyntaxError{Offset: -1, Message: err.Error()}
	}
	return FromValue(yamlNormalize(v))
}

// FromValue builds a node tree from an already-decoded schema document
// (bool or map[string]any).
func FromValue(v any) (*Node, error) {
	s, err := js.FromAny(v)
	if err != nil {
		return nil, defErrorf("invalid schema document: %v", err)
	}
	return nodeFromSchema(s)
}

func nodeFromSchema(s *js.Schema) (*Node, error) {
	if s == nil {
		return nil, nil
	}
	if s.Bool != nil {
		return BooleanSchema(*s.Bool), nil
	}
	for key := range s.Extra {
		if KeywordEnforcement[key] == Unsupported {
			return nil, defErrorf("keyword %q is not supported", key)
		}
	}
	n := &Node{
		typ:      s.Type,
		ref:      s.Ref,
		title:    s.Title,
		desc:     s.Description,
		required: append([]string(nil), s.Required...),
	}
	switch s.Type {
	case "", "string", "number", "integer", "boolean", "null", "object", "array":
	default:
		return nil, defErrorf("unknown type %q", s.Type)
	}
	if len(s.Enum) > 0 {
		n.enum = append([]any(nil), s.Enum...)
	}
	if s.Const != nil {
		n.hasConst = true
		n.constVal = *s.Const
	}
	if len(s.Properties) > 0 {
		props := make(map[string]*Node, len(s.Properties))
		for name, ps := range s.Properties {
			p, err := nodeFromSchema(ps)
			if err != nil {
				return nil, err
			}
			props[name] = p
		}
		n.props = props
	}
	for _, name := range n.required {
		if _, ok := n.props[name]; !ok {
			return nil, defErrorf("required name %q is not declared in properties", name)
		}
	}
	var err error
	if n.addProps, err = nodeFromBoolOrSchema("additionalProperties", s.AdditionalProperties); err != nil {
		return nil, err
	}
	switch items := s.Items.(type) {
	case nil:
	case *js.Schema:
		if n.items, err = nodeFromSchema(items); err != nil {
			return nil, err
		}
	case []*js.Schema:
		n.tuple = make([]*Node, len(items))
		for i, is := range items {
			if n.tuple[i], err = nodeFromSchema(is); err != nil {
				return nil, err
			}
		}
	default:
		return nil, defErrorf("items must be a schema or a list of schemas")
	}
	if n.addItems, err = nodeFromBoolOrSchema("additionalItems", s.AdditionalItems); err != nil {
		return nil, err
	}
	if n.addItems != nil && len(n.tuple) == 0 {
		return nil, defErrorf("additionalItems is only legal with the ordered-list items form")
	}
	if n.allOf, err = nodesFromList(s.AllOf); err != nil {
		return nil, err
	}
	if n.anyOf, err = nodesFromList(s.AnyOf); err != nil {
		return nil, err
	}
	if n.oneOf, err = nodesFromList(s.OneOf); err != nil {
		return nil, err
	}
	if s.If != nil {
		if n.ifN, err = nodeFromSchema(s.If); err != nil {
			return nil, err
		}
		if n.thenN, err = nodeFromSchema(s.Then); err != nil {
			return nil, err
		}
		if n.elsN, err = nodeFromSchema(s.Else); err != nil {
			return nil, err
		}
	} else if s.Then != nil || s.Else != nil {
		return nil, defErrorf("then/else require an if schema")
	}
	if len(s.Definitions) > 0 {
		defs := make(map[string]*Node, len(s.Definitions))
		for name, ds := range s.Definitions {
			if defs[name], err = nodeFromSchema(ds); err != nil {
				return nil, err
			}
		}
		n.defs = defs
	}
	if len(s.Extra) > 0 {
		extra := make(map[string]any, len(s.Extra))
		for k, v := range s.Extra {
			extra[k] = v
		}
		n.extra = extra
	}
	n.tag = deriveTag(n)
	return n, nil
}

func nodeFromBoolOrSchema(key string, v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return BooleanSchema(t), nil
	case *js.Schema:
		return nodeFromSchema(t)
	default:
		return nil, defErrorf("%s must be a boolean or a schema", key)
	}
}

func nodesFromList(list []*js.Schema) ([]*Node, error) {
	if len(list) == 0 {
		return nil, nil
	}
	out := make([]*Node, len(list))
	for i, s := range list {
		n, err := nodeFromSchema(s)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// deriveTag picks the primary tag of a literal-built node. Compound nodes
// keep every group; the tag reflects the dominant one in a fixed order.
func deriveTag(n *Node) Tag {
	switch n.typ {
	case "string":
		return TagString
	case "number":
		return TagNumber
	case "integer":
		return TagInteger
	case "boolean":
		return TagBoolean
	case "null":
		return TagNull
	case "object":
		return TagObject
	case "array":
		return TagArray
	}
	switch {
	case n.hasConst:
		return TagConst
	case len(n.enum) > 0:
		return TagEnum
	case len(n.allOf) > 0:
		return TagAllOf
	case len(n.anyOf) > 0:
		return TagAnyOf
	case len(n.oneOf) > 0:
		return TagOneOf
	case n.ifN != nil:
		return TagConditional
	case n.ref != "":
		return TagRef
	default:
		// No structural keyword at all behaves like the true schema,
		// but keeps its object serialization so annotations survive.
		return TagBooleanSchema
	}
}

// yamlNormalize converts YAML-decoded values (which may contain
// map[any]any on older documents) into JSON-shaped map[string]any.
func yamlNormalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalize(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalize(t[i])
		}
		return arr
	case int:
		return json.Number(fmt.Sprint(t))
	case int64:
		return json.Number(fmt.Sprint(t))
	case uint64:
		return json.Number(fmt.Sprint(t))
	default:
		return v
	}
}
