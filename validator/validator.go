// Package validator wraps the external draft-07 conformance engine
// (santhosh-tekuri/jsonschema). A document is compiled once into a
// Compiled validator and reused for every subsequent check.
package validator

import (
	"bytes"
	"errors"
	"strings"

	jschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// resourceURL anchors the in-memory document inside the engine's resource
// space; references inside the document resolve relative to it.
const resourceURL = "mem:///schema.json"

// Failure is a single validation failure reported by the engine.
type Failure struct {
	Keyword string // violated keyword, e.g. "type", "required", "enum"
	Path    string // JSON Pointer into the instance; "/" for the root
	Message string
	// Params is best-effort structured detail; the engine reports
	// locations rather than parameters, so it carries the keyword
	// location when available.
	Params map[string]any
}

// Result is the outcome of checking one value.
type Result struct {
	Valid  bool
	Errors []Failure
}

// Compiled is a compiled validator. It is immutable and safe for
// concurrent Check calls.
type Compiled struct {
	schema *jschema.Schema
}

// Compile compiles a serialized schema document. A structurally invalid
// document (malformed per the draft-07 meta-schema, or with unresolvable
// references) is rejected here; that is distinct from a value failing
// validation later.
func Compile(doc []byte) (*Compiled, error) {
	c := jschema.NewCompiler()
	c.Draft = jschema.Draft7
	if err := c.AddResource(resourceURL, bytes.NewReader(doc)); err != nil {
		return nil, err
	}
	s, err := c.Compile(resourceURL)
	if err != nil {
		return nil, err
	}
	return &Compiled{schema: s}, nil
}

// Check validates a decoded JSON value. Values must use the generic
// decoded representation (map[string]any, []any, string, bool, nil, and
// json.Number or float64 for numbers).
func (c *Compiled) Check(v any) Result {
	err := c.schema.Validate(v)
	if err == nil {
		return Result{Valid: true}
	}
	var ve *jschema.ValidationError
	if errors.As(err, &ve) {
		return Result{Errors: flatten(ve)}
	}
	return Result{Errors: []Failure{{Keyword: "schema", Path: "/", Message: err.Error()}}}
}

// flatten walks the engine's error tree and keeps the leaf causes in
// order. Interior nodes only restate that a child failed.
func flatten(ve *jschema.ValidationError) []Failure {
	var out []Failure
	var walk func(e *jschema.ValidationError)
	walk = func(e *jschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, toFailure(e))
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return out
}

func toFailure(e *jschema.ValidationError) Failure {
	f := Failure{
		Keyword: keywordOf(e.KeywordLocation),
		Path:    pointer(e.InstanceLocation),
		Message: e.Message,
	}
	if e.KeywordLocation != "" {
		f.Params = map[string]any{"keywordLocation": e.KeywordLocation}
	}
	return f
}

// keywordOf extracts the violated keyword from a keyword location such as
// "/properties/a/type". Numeric segments (combinator indices) are skipped.
func keywordOf(loc string) string {
	segs := strings.Split(loc, "/")
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		if s == "" || isIndex(s) {
			continue
		}
		return s
	}
	// The empty location is the schema itself, e.g. the false schema.
	return "schema"
}

func isIndex(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func pointer(instanceLocation string) string {
	if instanceLocation == "" {
		return "/"
	}
	return instanceLocation
}
