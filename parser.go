package jsonshape

import (
	"bytes"
	"errors"
	"io"

	json "github.com/goccy/go-json"

	"github.com/reoring/jsonshape/i18n"
	js "github.com/reoring/jsonshape/jsonschema"
	"github.com/reoring/jsonshape/validator"
)

// ParseOpt carries per-call parse options. The last option wins when
// several are supplied.
type ParseOpt struct {
	// SkipValidation returns the decoded value without checking it.
	// Explicitly unsound: the result is not guaranteed to match the
	// projected shape.
	SkipValidation bool
}

// Parser ties one schema to one compiled validator and one projected
// descriptor. Compilation happens once, eagerly, at construction and is
// amortized over every subsequent call.
//
// Node, Descriptor and the compiled validator are immutable and safe for
// concurrent use. The last-error slot is per-instance mutable state:
// concurrent Parse/Validates calls on the same instance race on it. Use
// Check, or one Parser per goroutine, when concurrent callers need
// reliable per-call diagnostics.
type Parser struct {
	node     *Node
	doc      *js.Schema
	desc     Descriptor
	compiled *validator.Compiled

	last   Issues
	failed bool
}

// NewParser serializes the node, compiles the document with the external
// engine and projects the descriptor. A document rejected by the engine's
// meta-schema yields a *CompileError, fatal for this instance.
func NewParser(n *Node) (*Parser, error) {
	if n == nil {
		return nil, defErrorf("nil schema node")
	}
	doc := Serialize(n)
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, &CompileError{msg: err.Error(), cause: err}
	}
	compiled, err := validator.Compile(raw)
	if err != nil {
		return nil, &CompileError{msg: err.Error(), cause: err}
	}
	return &Parser{
		node:     n,
		doc:      doc,
		desc:     Project(n),
		compiled: compiled,
	}, nil
}

// MustParser is NewParser that panics on error.
func MustParser(n *Node) *Parser {
	p, err := NewParser(n)
	if err != nil {
		panic(err)
	}
	return p
}

// Node returns the schema node this parser was built from.
func (p *Parser) Node() *Node { return p.node }

// Document returns the canonical document the validator was compiled from.
func (p *Parser) Document() *js.Schema { return p.doc }

// Descriptor returns the projected accepted-value shape. Values returned
// by a validating Parse are consistent with it.
func (p *Parser) Descriptor() Descriptor { return p.desc }

// Parse decodes data as generic JSON, validates it and returns the
// decoded value unmodified; no coercion is applied. Malformed text yields
// a *SyntaxError; a well-formed value failing the schema yields Issues.
func (p *Parser) Parse(data []byte, opts ...ParseOpt) (any, error) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	v, err := decodeAny(data)
	if err != nil {
		return nil, err
	}
	if opt.SkipValidation {
		return v, nil
	}
	ok, iss := p.Check(v)
	p.record(ok, iss)
	if !ok {
		return nil, iss
	}
	return v, nil
}

// ParseString is Parse over a string input.
func (p *Parser) ParseString(s string, opts ...ParseOpt) (any, error) {
	return p.Parse([]byte(s), opts...)
}

// Validates reports whether a decoded value conforms to the schema and
// records the outcome in the last-error slot.
func (p *Parser) Validates(v any) bool {
	ok, iss := p.Check(v)
	p.record(ok, iss)
	return ok
}

// Check validates a decoded value and returns diagnostics directly,
// without touching the last-error slot. This is the variant for
// concurrent callers.
func (p *Parser) Check(v any) (bool, Issues) {
	res := p.compiled.Check(v)
	if res.Valid {
		return true, nil
	}
	iss := make(Issues, 0, len(res.Errors))
	for _, f := range res.Errors {
		msg := f.Message
		if msg == "" {
			msg = i18n.T(f.Keyword, nil)
		}
		iss = append(iss, Issue{
			Path:    f.Path,
			Code:    f.Keyword,
			Message: msg,
			Params:  f.Params,
			Offset:  -1,
		})
	}
	return false, iss
}

// Errors returns the diagnostics of the most recent Parse/Validates call,
// or ok=false when that call succeeded or no validating call has run.
func (p *Parser) Errors() (Issues, bool) {
	if !p.failed {
		return nil, false
	}
	return p.last, true
}

func (p *Parser) record(ok bool, iss Issues) {
	if ok {
		p.failed = false
		p.last = nil
		return
	}
	p.failed = true
	p.last = iss
}

// Localize rewrites issue messages through the i18n dictionary for codes
// it knows about, leaving the rest untouched.
func Localize(iss Issues) Issues {
	out := make(Issues, len(iss))
	for i, it := range iss {
		if msg := i18n.T(it.Code, nil); msg != it.Code {
			it.Message = msg
		}
		out[i] = it
	}
	return out
}

// decodeAny decodes data as a generic JSON value with numbers preserved
// as json.Number, the representation the validation engine accepts.
func decodeAny(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, asSyntaxError(err)
	}
	// Reject trailing non-whitespace so "1 2" is not silently accepted.
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, &SyntaxError{Offset: dec.InputOffset(), Message: "unexpected trailing data"}
	}
	return v, nil
}

func asSyntaxError(err error) *SyntaxError {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return &SyntaxError{Offset: se.Offset, Message: se.Error()}
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &SyntaxError{Offset: -1, Message: "unexpected end of JSON input"}
	}
	return &SyntaxError{Offset: -1, Message: err.Error()}
}
