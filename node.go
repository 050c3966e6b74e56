package jsonshape

// Tag identifies a schema node's primary keyword group.
type Tag int

const (
	TagString Tag = iota
	TagNumber
	TagInteger
	TagBoolean
	TagNull
	TagObject
	TagArray
	TagConst
	TagEnum
	TagAllOf
	TagAnyOf
	TagOneOf
	TagConditional
	TagRef
	TagBooleanSchema
)

func (t Tag) String() string {
	switch t {
	case TagString:
		return "string"
	case TagNumber:
		return "number"
	case TagInteger:
		return "integer"
	case TagBoolean:
		return "boolean"
	case TagNull:
		return "null"
	case TagObject:
		return "object"
	case TagArray:
		return "array"
	case TagConst:
		return "const"
	case TagEnum:
		return "enum"
	case TagAllOf:
		return "allOf"
	case TagAnyOf:
		return "anyOf"
	case TagOneOf:
		return "oneOf"
	case TagConditional:
		return "conditional"
	case TagRef:
		return "$ref"
	case TagBooleanSchema:
		return "booleanSchema"
	default:
		return "unknown"
	}
}

// Node is an immutable schema fragment. Nodes built via the tag-specific
// constructors carry a single keyword group; nodes loaded from a literal
// document may combine several groups (e.g. both type and anyOf), which
// projection treats as an intersection. A Node is never mutated after
// construction; With* helpers return copies.
type Node struct {
	tag Tag

	// type group
	typ      string // JSON type name; "" when the node has no type keyword
	props    map[string]*Node
	required []string
	addProps *Node // nil = absent; boolean forms are BooleanSchema nodes
	items    *Node // single-schema items form
	tuple    []*Node
	addItems *Node

	// literal groups
	enum     []any
	hasConst bool
	constVal any

	// combinator groups
	allOf            []*Node
	anyOf            []*Node
	oneOf            []*Node
	ifN, thenN, elsN *Node

	ref string

	isBool    bool // boolean-form schema (serializes to bare true/false)
	boolAllow bool

	// serialization-only metadata
	title string
	desc  string
	extra map[string]any
	defs  map[string]*Node
}

// Tag reports the node's primary tag.
func (n *Node) Tag() Tag { return n.tag }

// clone returns a shallow copy safe for With* attachment. Nested maps are
// copied lazily by the caller that mutates them.
func (n *Node) clone() *Node {
	c := *n
	return &c
}

// WithTitle returns a copy of the node carrying a title annotation.
func (n *Node) WithTitle(title string) *Node {
	c := n.clone()
	c.title = title
	return c
}

// WithDescription returns a copy of the node carrying a description.
func (n *Node) WithDescription(desc string) *Node {
	c := n.clone()
	c.desc = desc
	return c
}

// WithKeyword returns a copy of the node carrying an opaque keyword such as
// pattern or minLength. These keywords serialize into the document and are
// enforced at validation time, but never influence projection.
func (n *Node) WithKeyword(key string, v any) *Node {
	c := n.clone()
	extra := make(map[string]any, len(n.extra)+1)
	for k, ev := range n.extra {
		extra[k] = ev
	}
	extra[key] = v
	c.extra = extra
	return c
}

// WithDefinitions returns a copy of the node carrying $ref targets. Only
// meaningful on a document root.
func (n *Node) WithDefinitions(defs map[string]*Node) *Node {
	c := n.clone()
	merged := make(map[string]*Node, len(n.defs)+len(defs))
	for k, d := range n.defs {
		merged[k] = d
	}
	for k, d := range defs {
		merged[k] = d
	}
	c.defs = merged
	return c
}

// WithEnum returns a copy of a primitive node restricted to the given
// literal values. Projection then yields the union of those literals
// instead of the primitive kind.
func (n *Node) WithEnum(vals ...any) (*Node, error) {
	switch n.tag {
	case TagString, TagNumber, TagInteger, TagBoolean, TagNull:
	default:
		return nil, defErrorf("enum values may only be attached to primitive nodes, not %s", n.tag)
	}
	if len(vals) == 0 {
		return nil, defErrorf("enum requires at least one value")
	}
	c := n.clone()
	c.enum = append([]any(nil), vals...)
	return c, nil
}
