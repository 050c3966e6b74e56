// Package jsonshape derives two consistent artifacts from one schema
// declaration:
//
//   - A canonical draft-07 JSON Schema document, compiled once by an
//     external conformance engine and reused for every check.
//   - A TypeDescriptor: an explicit, inspectable runtime description of
//     the set of values the schema accepts, computed by a pure projection
//     over the node tree.
//
// Design policy:
//
//   - Nodes are immutable and built via tag-specific constructors that
//     reject illegal keyword combinations at construction time.
//   - Projection over-approximates, never under-approximates: a value the
//     validator accepts is always consistent with the descriptor.
//   - Runtime-only keywords (pattern, bounds, formats) serialize into the
//     document and are enforced by the engine, but have no structural
//     representation in the descriptor.
//
// Typical usage:
//
//	n := jsonshape.Object().
//	    Field("id", jsonshape.String()).
//	    Require("id").
//	    MustBuild()
//	p, err := jsonshape.NewParser(n)
//	v, err := p.Parse(data)
//	shape := p.Descriptor()
package jsonshape
