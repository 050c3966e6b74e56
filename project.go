package jsonshape

// Project computes the accepted-value shape of a node. It is pure and
// total: every node yields a descriptor, and identical nodes always yield
// structurally equal descriptors. A schema that can accept nothing yields
// Never.
//
// Projection is an over-approximation wherever exactness is impossible:
// oneOf loses its exclusivity, $ref is never resolved, a conditional
// without both branches places no constraint, and runtime-only keywords
// (pattern, bounds, formats) have no structural representation at all.
// The validation engine still enforces all of those at check time.
func Project(n *Node) Descriptor {
	if n == nil {
		return Unknown{}
	}
	if n.isBool {
		if n.boolAllow {
			return Unknown{}
		}
		return Never{}
	}
	parts := groupProjections(n)
	switch len(parts) {
	case 0:
		// No structural keyword group present; annotations only.
		return Unknown{}
	case 1:
		return parts[0]
	default:
		// Several keyword groups on one node constrain simultaneously.
		return Intersection{Members: parts}
	}
}

// groupProjections projects each keyword group present on the node, in a
// fixed order so compound nodes are deterministic.
func groupProjections(n *Node) []Descriptor {
	var parts []Descriptor
	if n.typ != "" {
		parts = append(parts, projectType(n))
	}
	if n.hasConst {
		parts = append(parts, Literal{Value: n.constVal})
	}
	if len(n.enum) > 0 && !enumConsumedByType(n) {
		parts = append(parts, enumUnion(n.enum))
	}
	if len(n.allOf) > 0 {
		parts = append(parts, Intersection{Members: projectMembers(n.allOf)})
	}
	if len(n.anyOf) > 0 {
		parts = append(parts, Union{Members: projectMembers(n.anyOf)})
	}
	if len(n.oneOf) > 0 {
		// Mutual exclusivity is not modeled; oneOf projects like anyOf.
		parts = append(parts, Union{Members: projectMembers(n.oneOf)})
	}
	if n.ifN != nil {
		parts = append(parts, projectConditional(n))
	}
	if n.ref != "" {
		// References are resolved by the validation engine only.
		parts = append(parts, Unknown{})
	}
	return parts
}

// enumConsumedByType reports whether the enum group was already folded
// into the type group: on a primitive node the enum overrides the
// primitive kind rather than intersecting with it.
func enumConsumedByType(n *Node) bool {
	switch n.typ {
	case "string", "number", "integer", "boolean", "null":
		return true
	default:
		return false
	}
}

func projectType(n *Node) Descriptor {
	switch n.typ {
	case "object":
		return projectObject(n)
	case "array":
		return projectArray(n)
	default:
		if len(n.enum) > 0 {
			return enumUnion(n.enum)
		}
		return Primitive{Name: n.typ}
	}
}

func projectObject(n *Node) Descriptor {
	fields := make(map[string]Field, len(n.props))
	req := make(map[string]struct{}, len(n.required))
	for _, name := range n.required {
		req[name] = struct{}{}
	}
	for name, p := range n.props {
		_, required := req[name]
		fields[name] = Field{Desc: Project(p), Required: required}
	}
	// Absent additionalProperties leaves extra members unconstrained; the
	// boolean forms fall out of projecting the BooleanSchema node.
	var index Descriptor = Unknown{}
	if n.addProps != nil {
		index = Project(n.addProps)
	}
	return Record{Fields: fields, Index: index}
}

func projectArray(n *Node) Descriptor {
	if n.items != nil {
		return Tuple{Rest: Project(n.items)}
	}
	if len(n.tuple) > 0 {
		fixed := make([]Descriptor, len(n.tuple))
		for i, m := range n.tuple {
			fixed[i] = Project(m)
		}
		var rest Descriptor = Unknown{}
		if n.addItems != nil {
			rest = Project(n.addItems)
		}
		return Tuple{Fixed: fixed, Rest: rest}
	}
	return Tuple{Rest: Unknown{}}
}

func projectMembers(members []*Node) []Descriptor {
	out := make([]Descriptor, len(members))
	for i, m := range members {
		out[i] = Project(m)
	}
	return out
}

// projectConditional maps if/then/else. Projection never evaluates the
// condition against data, so only the two-branch form narrows anything:
// every accepted value matches then or else.
func projectConditional(n *Node) Descriptor {
	if n.thenN != nil && n.elsN != nil {
		return Union{Members: []Descriptor{Project(n.thenN), Project(n.elsN)}}
	}
	return Unknown{}
}

func enumUnion(vals []any) Descriptor {
	members := make([]Descriptor, len(vals))
	for i, v := range vals {
		members[i] = Literal{Value: v}
	}
	return Union{Members: members}
}
