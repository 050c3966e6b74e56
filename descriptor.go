package jsonshape

import "reflect"

// DescKind identifies a descriptor variant.
type DescKind int

const (
	KindUnknown DescKind = iota
	KindNever
	KindPrimitive
	KindLiteral
	KindRecord
	KindTuple
	KindUnion
	KindIntersection
)

func (k DescKind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindNever:
		return "never"
	case KindPrimitive:
		return "primitive"
	case KindLiteral:
		return "literal"
	case KindRecord:
		return "record"
	case KindTuple:
		return "tuple"
	case KindUnion:
		return "union"
	case KindIntersection:
		return "intersection"
	default:
		return "invalid"
	}
}

// Descriptor describes the shape of values a schema accepts. Descriptors
// are structural values: compare them with Equal, never by identity.
type Descriptor interface {
	DescKind() DescKind
}

// Unknown places no constraint on a value.
type Unknown struct{}

func (Unknown) DescKind() DescKind { return KindUnknown }

// Never accepts no value at all.
type Never struct{}

func (Never) DescKind() DescKind { return KindNever }

// Primitive accepts values of one JSON primitive kind
// ("string", "number", "integer", "boolean", "null").
type Primitive struct {
	Name string
}

func (Primitive) DescKind() DescKind { return KindPrimitive }

// Literal accepts exactly one value.
type Literal struct {
	Value any
}

func (Literal) DescKind() DescKind { return KindLiteral }

// Field is a record member: its shape and whether the member must be
// present.
type Field struct {
	Desc     Descriptor
	Required bool
}

// Record accepts objects. Index describes members beyond the named fields:
// Unknown when unconstrained, Never when no extra member is accepted.
type Record struct {
	Fields map[string]Field
	Index  Descriptor
}

func (Record) DescKind() DescKind { return KindRecord }

// Tuple accepts arrays: a fixed prefix of per-position shapes plus a Rest
// shape. Rest over-approximates which positions it applies to; it is not
// restricted to positions beyond the prefix.
type Tuple struct {
	Fixed []Descriptor
	Rest  Descriptor
}

func (Tuple) DescKind() DescKind { return KindTuple }

// Union accepts values matching at least one member. Members form a set;
// order carries no meaning.
type Union struct {
	Members []Descriptor
}

func (Union) DescKind() DescKind { return KindUnion }

// Intersection accepts values matching every member. Members form a set;
// order carries no meaning.
type Intersection struct {
	Members []Descriptor
}

func (Intersection) DescKind() DescKind { return KindIntersection }

// Equal reports whether two descriptors describe the same shape.
// Union and intersection members are compared as multisets.
func Equal(a, b Descriptor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.DescKind() != b.DescKind() {
		return false
	}
	switch av := a.(type) {
	case Unknown, Never:
		return true
	case Primitive:
		return av.Name == b.(Primitive).Name
	case Literal:
		return reflect.DeepEqual(av.Value, b.(Literal).Value)
	case Record:
		bv := b.(Record)
		if len(av.Fields) != len(bv.Fields) {
			return false
		}
		for name, af := range av.Fields {
			bf, ok := bv.Fields[name]
			if !ok || af.Required != bf.Required || !Equal(af.Desc, bf.Desc) {
				return false
			}
		}
		return Equal(av.Index, bv.Index)
	case Tuple:
		bv := b.(Tuple)
		if len(av.Fixed) != len(bv.Fixed) {
			return false
		}
		for i := range av.Fixed {
			if !Equal(av.Fixed[i], bv.Fixed[i]) {
				return false
			}
		}
		return Equal(av.Rest, bv.Rest)
	case Union:
		return sameMembers(av.Members, b.(Union).Members)
	case Intersection:
		return sameMembers(av.Members, b.(Intersection).Members)
	default:
		return false
	}
}

func sameMembers(a, b []Descriptor) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, am := range a {
		for i, bm := range b {
			if !used[i] && Equal(am, bm) {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}
