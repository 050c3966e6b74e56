package jsonshape

import (
	"sort"

	js "github.com/reoring/jsonshape/jsonschema"
)

// Serialize renders a node tree as the canonical draft-07 document. The
// result is deterministic for a given tree: keys, required names and
// definitions are emitted in sorted order, and an object-form root carries
// the draft-07 identifier. Boolean-form schemas serialize to bare
// true/false.
func Serialize(n *Node) *js.Schema {
	doc := schemaOf(n)
	if doc.Bool == nil {
		doc.SchemaID = js.DraftID
	}
	return doc
}

func schemaOf(n *Node) *js.Schema {
	if n == nil {
		return nil
	}
	if n.isBool {
		if n.boolAllow {
			return js.True()
		}
		return js.False()
	}
	s := &js.Schema{
		Type:        n.typ,
		Ref:         n.ref,
		Title:       n.title,
		Description: n.desc,
	}
	if len(n.enum) > 0 {
		s.Enum = append([]any(nil), n.enum...)
	}
	if n.hasConst {
		c := n.constVal
		s.Const = &c
	}
	if len(n.props) > 0 {
		props := make(map[string]*js.Schema, len(n.props))
		for name, p := range n.props {
			props[name] = schemaOf(p)
		}
		s.Properties = props
	}
	if len(n.required) > 0 {
		req := append([]string(nil), n.required...)
		sort.Strings(req)
		s.Required = req
	}
	if n.addProps != nil {
		s.AdditionalProperties = boolOrSchema(n.addProps)
	}
	if n.items != nil {
		s.Items = schemaOf(n.items)
	} else if len(n.tuple) > 0 {
		list := make([]*js.Schema, len(n.tuple))
		for i, m := range n.tuple {
			list[i] = schemaOf(m)
		}
		s.Items = list
	}
	if n.addItems != nil {
		s.AdditionalItems = boolOrSchema(n.addItems)
	}
	if len(n.allOf) > 0 {
		s.AllOf = schemaList(n.allOf)
	}
	if len(n.anyOf) > 0 {
		s.AnyOf = schemaList(n.anyOf)
	}
	if len(n.oneOf) > 0 {
		s.OneOf = schemaList(n.oneOf)
	}
	if n.ifN != nil {
		s.If = schemaOf(n.ifN)
		s.Then = schemaOf(n.thenN)
		s.Else = schemaOf(n.elsN)
	}
	if len(n.defs) > 0 {
		defs := make(map[string]*js.Schema, len(n.defs))
		for name, d := range n.defs {
			defs[name] = schemaOf(d)
		}
		s.Definitions = defs
	}
	if len(n.extra) > 0 {
		extra := make(map[string]any, len(n.extra))
		for k, v := range n.extra {
			extra[k] = v
		}
		s.Extra = extra
	}
	return s
}

// boolOrSchema collapses boolean-form nodes back to JSON booleans inside
// additionalProperties/additionalItems, matching how they were declared.
func boolOrSchema(n *Node) any {
	if n.isBool {
		return n.boolAllow
	}
	return schemaOf(n)
}

func schemaList(members []*Node) []*js.Schema {
	out := make([]*js.Schema, len(members))
	for i, m := range members {
		out[i] = schemaOf(m)
	}
	return out
}
