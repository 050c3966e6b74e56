package jsonshape_test

import (
	"errors"
	"testing"

	jsonshape "github.com/reoring/jsonshape"
)

func mustParser(t *testing.T, n *jsonshape.Node) *jsonshape.Parser {
	t.Helper()
	p, err := jsonshape.NewParser(n)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

func issueWithCode(iss jsonshape.Issues, code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

func issueAtPath(iss jsonshape.Issues, path string) bool {
	for _, it := range iss {
		if it.Path == path {
			return true
		}
	}
	return false
}

func TestParse_EnumAcceptsAndRejects(t *testing.T) {
	n, err := jsonshape.String().WithEnum("B1", "B2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := mustParser(t, n)

	v, err := p.Parse([]byte(`"B1"`))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if v != "B1" {
		t.Fatalf("value must come back unmodified, got %#v", v)
	}

	_, err = p.Parse([]byte(`"X"`))
	iss, ok := jsonshape.AsIssues(err)
	if !ok || !issueWithCode(iss, "enum") {
		t.Fatalf("expected an enum violation, got %v", err)
	}
}

func TestParse_RequiredObjectField(t *testing.T) {
	n := jsonshape.Object().
		Field("a", jsonshape.String()).
		Field("b", jsonshape.Number()).
		Require("a").
		MustBuild()
	p := mustParser(t, n)

	v, err := p.Parse([]byte(`{"a":"hi"}`))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok || m["a"] != "hi" {
		t.Fatalf("decoded value mismatch: %#v", v)
	}

	_, err = p.Parse([]byte(`{"b":1}`))
	iss, ok := jsonshape.AsIssues(err)
	if !ok || !issueWithCode(iss, "required") {
		t.Fatalf("expected a required violation, got %v", err)
	}
}

func TestParse_TuplePositions(t *testing.T) {
	n := jsonshape.Array().
		Tuple(jsonshape.String()).
		AdditionalItems(jsonshape.Number()).
		MustBuild()
	p := mustParser(t, n)

	if _, err := p.Parse([]byte(`["x",1,2]`)); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	_, err := p.Parse([]byte(`[1,"x"]`))
	iss, ok := jsonshape.AsIssues(err)
	if !ok || !issueAtPath(iss, "/0") {
		t.Fatalf("expected a violation at position 0, got %v", err)
	}
}

func TestParse_AllOfMergesRequirements(t *testing.T) {
	loose := jsonshape.Object().MustBuild()
	strict := jsonshape.Object().
		Field("a", jsonshape.String()).
		Require("a").
		MustBuild()
	n, err := jsonshape.AllOf(loose, strict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := mustParser(t, n)

	if _, err := p.Parse([]byte(`{}`)); err == nil {
		t.Fatalf("expected a missing-a violation")
	}
	if _, err := p.Parse([]byte(`{"a":"v"}`)); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestParse_FalseSchemaRejectsEverything(t *testing.T) {
	p := mustParser(t, jsonshape.BooleanSchema(false))
	_, err := p.Parse([]byte(`{"any":"thing"}`))
	iss, ok := jsonshape.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 1 {
		t.Fatalf("expected exactly one error entry, got %#v", iss)
	}
}

func TestParse_SkipValidationIsUnchecked(t *testing.T) {
	p := mustParser(t, jsonshape.Null())

	v, err := p.Parse([]byte(`"hello"`), jsonshape.ParseOpt{SkipValidation: true})
	if err != nil {
		t.Fatalf("skip-validation parse must not fail, got %v", err)
	}
	if v != "hello" {
		t.Fatalf("expected the raw decoded value, got %#v", v)
	}

	if p.Validates("hello") {
		t.Fatalf("the skipped value must still fail validation")
	}
	iss, ok := p.Errors()
	if !ok || len(iss) == 0 {
		t.Fatalf("expected recorded diagnostics, got ok=%v", ok)
	}
}

func TestParse_SyntaxError(t *testing.T) {
	p := mustParser(t, jsonshape.String())
	_, err := p.Parse([]byte(`{"a":`))
	var se *jsonshape.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}

	if _, err := p.Parse([]byte(`"a" "b"`)); err == nil {
		t.Fatalf("expected an error for trailing data")
	}
}

func TestValidates_LastErrorSlot(t *testing.T) {
	p := mustParser(t, jsonshape.String())

	if p.Validates(42) {
		t.Fatalf("expected failure")
	}
	if iss, ok := p.Errors(); !ok || len(iss) == 0 {
		t.Fatalf("expected diagnostics after a failing call")
	}

	if !p.Validates("ok") {
		t.Fatalf("expected success")
	}
	if _, ok := p.Errors(); ok {
		t.Fatalf("a succeeding call must clear the slot")
	}
}

func TestCheck_DoesNotTouchSlot(t *testing.T) {
	p := mustParser(t, jsonshape.String())

	ok, iss := p.Check(42)
	if ok || len(iss) == 0 {
		t.Fatalf("expected failure with diagnostics")
	}
	if _, recorded := p.Errors(); recorded {
		t.Fatalf("Check must not mutate the last-error slot")
	}
}

func TestNewParser_CompileError(t *testing.T) {
	n := jsonshape.Object().
		Field("x", jsonshape.MustRef("#/definitions/missing")).
		MustBuild()
	_, err := jsonshape.NewParser(n)
	var ce *jsonshape.CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CompileError, got %v", err)
	}
}

func TestParser_DescriptorMatchesProjection(t *testing.T) {
	n := jsonshape.Object().Field("a", jsonshape.String()).Require("a").MustBuild()
	p := mustParser(t, n)
	if !jsonshape.Equal(p.Descriptor(), jsonshape.Project(n)) {
		t.Fatalf("parser descriptor must equal the node projection")
	}
}

// conforms is the test-side semantics of a descriptor: it accepts at least
// every value the validator accepts, which is what the soundness and
// never-narrower properties demand.
func conforms(d jsonshape.Descriptor, v any) bool {
	switch t := d.(type) {
	case jsonshape.Unknown:
		return true
	case jsonshape.Never:
		return false
	case jsonshape.Primitive:
		return primitiveConforms(t.Name, v)
	case jsonshape.Literal:
		return literalEqual(t.Value, v)
	case jsonshape.Record:
		m, ok := v.(map[string]any)
		if !ok {
			return false
		}
		for name, f := range t.Fields {
			fv, present := m[name]
			if !present {
				if f.Required {
					return false
				}
				continue
			}
			if !conforms(f.Desc, fv) {
				return false
			}
		}
		for name, fv := range m {
			if _, declared := t.Fields[name]; declared {
				continue
			}
			if !conforms(t.Index, fv) {
				return false
			}
		}
		return true
	case jsonshape.Tuple:
		arr, ok := v.([]any)
		if !ok {
			return false
		}
		for i, el := range arr {
			if i < len(t.Fixed) {
				if !conforms(t.Fixed[i], el) {
					return false
				}
				continue
			}
			if !conforms(t.Rest, el) {
				return false
			}
		}
		return true
	case jsonshape.Union:
		for _, m := range t.Members {
			if conforms(m, v) {
				return true
			}
		}
		return false
	case jsonshape.Intersection:
		for _, m := range t.Members {
			if !conforms(m, v) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func primitiveConforms(name string, v any) bool {
	switch name {
	case "string":
		_, ok := v.(string)
		return ok
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "null":
		return v == nil
	case "number", "integer":
		switch v.(type) {
		case float64, int, int64:
			return true
		default:
			_, ok := v.(interface{ Int64() (int64, error) }) // json.Number
			return ok
		}
	default:
		return false
	}
}

func literalEqual(a, b any) bool {
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return as == bs
	}
	return a == b
}

func TestSoundness_AcceptedValuesConformToDescriptor(t *testing.T) {
	cases := []struct {
		name  string
		node  *jsonshape.Node
		input string
	}{
		{
			name: "object with optional field",
			node: jsonshape.Object().
				Field("a", jsonshape.String()).
				Field("b", jsonshape.Number()).
				Require("a").
				MustBuild(),
			input: `{"a":"hi","b":1}`,
		},
		{
			name: "tuple with additional items",
			node: jsonshape.Array().
				Tuple(jsonshape.String()).
				AdditionalItems(jsonshape.Number()).
				MustBuild(),
			input: `["x",1,2]`,
		},
		{
			name:  "enum literal",
			node:  jsonshape.MustEnum("a", "b"),
			input: `"a"`,
		},
		{
			name: "oneOf over-approximated as union",
			node: func() *jsonshape.Node {
				n, _ := jsonshape.OneOf(jsonshape.String(), jsonshape.Number())
				return n
			}(),
			input: `"only-a-string"`,
		},
	}
	for _, c := range cases {
		p := mustParser(t, c.node)
		v, err := p.Parse([]byte(c.input))
		if err != nil {
			t.Fatalf("%s: expected acceptance, got %v", c.name, err)
		}
		if !conforms(p.Descriptor(), v) {
			t.Fatalf("%s: accepted value does not conform to the descriptor", c.name)
		}
	}
}
