package jsonshape

import "sort"

// String returns a string primitive node.
func String() *Node { return &Node{tag: TagString, typ: "string"} }

// Number returns a number primitive node.
func Number() *Node { return &Node{tag: TagNumber, typ: "number"} }

// Integer returns an integer primitive node.
func Integer() *Node { return &Node{tag: TagInteger, typ: "integer"} }

// Boolean returns a boolean primitive node.
func Boolean() *Node { return &Node{tag: TagBoolean, typ: "boolean"} }

// Null returns a null primitive node.
func Null() *Node { return &Node{tag: TagNull, typ: "null"} }

// Const returns a node accepting exactly the given literal value.
func Const(v any) *Node { return &Node{tag: TagConst, hasConst: true, constVal: v} }

// Enum returns a type-less node accepting exactly the given literal values.
func Enum(vals ...any) (*Node, error) {
	if len(vals) == 0 {
		return nil, defErrorf("enum requires at least one value")
	}
	return &Node{tag: TagEnum, enum: append([]any(nil), vals...)}, nil
}

// MustEnum is Enum that panics on a definition error.
func MustEnum(vals ...any) *Node {
	n, err := Enum(vals...)
	if err != nil {
		panic(err)
	}
	return n
}

// Ref returns a node delegating to a schema reference. The reference is
// resolved by the validation engine only; projection does not follow it.
func Ref(ref string) (*Node, error) {
	if ref == "" {
		return nil, defErrorf("$ref requires a non-empty reference")
	}
	return &Node{tag: TagRef, ref: ref}, nil
}

// MustRef is Ref that panics on a definition error.
func MustRef(ref string) *Node {
	n, err := Ref(ref)
	if err != nil {
		panic(err)
	}
	return n
}

// BooleanSchema returns the boolean-form schema: true accepts every value,
// false accepts none.
func BooleanSchema(allow bool) *Node {
	return &Node{tag: TagBooleanSchema, isBool: true, boolAllow: allow}
}

// AllOf returns a node accepting values matching every member.
func AllOf(members ...*Node) (*Node, error) {
	ms, err := combinatorMembers("allOf", members)
	if err != nil {
		return nil, err
	}
	return &Node{tag: TagAllOf, allOf: ms}, nil
}

// AnyOf returns a node accepting values matching at least one member.
func AnyOf(members ...*Node) (*Node, error) {
	ms, err := combinatorMembers("anyOf", members)
	if err != nil {
		return nil, err
	}
	return &Node{tag: TagAnyOf, anyOf: ms}, nil
}

// OneOf returns a node accepting values matching exactly one member.
// Projection treats it as anyOf; the exclusivity is enforced only by the
// validation engine.
func OneOf(members ...*Node) (*Node, error) {
	ms, err := combinatorMembers("oneOf", members)
	if err != nil {
		return nil, err
	}
	return &Node{tag: TagOneOf, oneOf: ms}, nil
}

func combinatorMembers(kw string, members []*Node) ([]*Node, error) {
	if len(members) == 0 {
		return nil, defErrorf("%s requires at least one member schema", kw)
	}
	for i, m := range members {
		if m == nil {
			return nil, defErrorf("%s member %d is nil", kw, i)
		}
	}
	return append([]*Node(nil), members...), nil
}

// ---- object builder ----

// ObjectBuilder assembles an object node. Build validates the keyword
// combination; in particular every required name must be declared as a
// property.
type ObjectBuilder struct {
	fields   map[string]*Node
	required map[string]struct{}
	addProps *Node
}

// Object creates a new object builder. additionalProperties is absent by
// default, which leaves extra members unconstrained.
func Object() *ObjectBuilder {
	return &ObjectBuilder{
		fields:   map[string]*Node{},
		required: map[string]struct{}{},
	}
}

// Field registers a property schema.
func (b *ObjectBuilder) Field(name string, n *Node) *ObjectBuilder {
	b.fields[name] = n
	return b
}

// Require marks one or more properties as required.
func (b *ObjectBuilder) Require(names ...string) *ObjectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// AdditionalProperties constrains members beyond the declared properties to
// the given schema.
func (b *ObjectBuilder) AdditionalProperties(n *Node) *ObjectBuilder {
	b.addProps = n
	return b
}

// NoAdditionalProperties rejects members beyond the declared properties.
func (b *ObjectBuilder) NoAdditionalProperties() *ObjectBuilder {
	b.addProps = BooleanSchema(false)
	return b
}

// Build validates and returns the object node.
func (b *ObjectBuilder) Build() (*Node, error) {
	required := make([]string, 0, len(b.required))
	for name := range b.required {
		if _, ok := b.fields[name]; !ok {
			return nil, defErrorf("required name %q is not declared in properties", name)
		}
		required = append(required, name)
	}
	sort.Strings(required)
	for name, f := range b.fields {
		if f == nil {
			return nil, defErrorf("property %q has a nil schema", name)
		}
	}
	props := make(map[string]*Node, len(b.fields))
	for name, f := range b.fields {
		props[name] = f
	}
	return &Node{tag: TagObject, typ: "object", props: props, required: required, addProps: b.addProps}, nil
}

// MustBuild is Build that panics on a definition error.
func (b *ObjectBuilder) MustBuild() *Node {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

// ---- array builder ----

// ArrayBuilder assembles an array node. Items has two forms: a single
// schema constraining every element, or an ordered list constraining a
// fixed prefix. additionalItems is only legal with the list form.
type ArrayBuilder struct {
	item     *Node
	tuple    []*Node
	hasTuple bool
	addItems *Node
}

// Array creates a new array builder.
func Array() *ArrayBuilder { return &ArrayBuilder{} }

// Items sets the single-schema form: every element matches n.
func (b *ArrayBuilder) Items(n *Node) *ArrayBuilder {
	b.item = n
	return b
}

// Tuple sets the ordered-list form: element i matches items[i].
func (b *ArrayBuilder) Tuple(items ...*Node) *ArrayBuilder {
	b.tuple = append([]*Node(nil), items...)
	b.hasTuple = true
	return b
}

// AdditionalItems constrains elements beyond the fixed prefix. Legal only
// together with Tuple.
func (b *ArrayBuilder) AdditionalItems(n *Node) *ArrayBuilder {
	b.addItems = n
	return b
}

// Build validates and returns the array node.
func (b *ArrayBuilder) Build() (*Node, error) {
	if b.item != nil && b.hasTuple {
		return nil, defErrorf("items cannot use both the single-schema and the ordered-list form")
	}
	if b.addItems != nil && !b.hasTuple {
		return nil, defErrorf("additionalItems is only legal with the ordered-list items form")
	}
	for i, m := range b.tuple {
		if m == nil {
			return nil, defErrorf("items entry %d is nil", i)
		}
	}
	return &Node{tag: TagArray, typ: "array", items: b.item, tuple: b.tuple, addItems: b.addItems}, nil
}

// MustBuild is Build that panics on a definition error.
func (b *ArrayBuilder) MustBuild() *Node {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

// ---- conditional builder ----

// ConditionalBuilder assembles an if/then/else node.
type ConditionalBuilder struct {
	ifN, thenN, elsN *Node
}

// If starts a conditional node. The condition schema is mandatory.
func If(cond *Node) *ConditionalBuilder { return &ConditionalBuilder{ifN: cond} }

// Then sets the schema applied when the condition matches.
func (b *ConditionalBuilder) Then(n *Node) *ConditionalBuilder {
	b.thenN = n
	return b
}

// Else sets the schema applied when the condition does not match.
func (b *ConditionalBuilder) Else(n *Node) *ConditionalBuilder {
	b.elsN = n
	return b
}

// Build validates and returns the conditional node.
func (b *ConditionalBuilder) Build() (*Node, error) {
	if b.ifN == nil {
		return nil, defErrorf("conditional requires an if schema")
	}
	return &Node{tag: TagConditional, ifN: b.ifN, thenN: b.thenN, elsN: b.elsN}, nil
}

// MustBuild is Build that panics on a definition error.
func (b *ConditionalBuilder) MustBuild() *Node {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}
