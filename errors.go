package jsonshape

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes for failures produced by the facade itself. Validation
// failures reported by the external engine carry the violated draft-07
// keyword as their code ("type", "required", "enum", ...).
const (
	CodeParseError = "parse_error"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer into the instance (for example: /items/2).
	Code    string // Violated keyword, or one of the codes listed above.
	Message string
	// Params carries structured parameters for observability. Best-effort;
	// the external engine does not always supply them.
	Params map[string]any
	Offset int64 // Byte offset in the input source (-1 when unknown).
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /a
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice
// when needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// DefinitionError reports an illegal keyword combination detected at node
// construction. Construction fails fast and never yields a malformed node.
type DefinitionError struct {
	msg string
}

func (e *DefinitionError) Error() string { return "jsonshape: " + e.msg }

func defErrorf(format string, args ...any) *DefinitionError {
	return &DefinitionError{msg: fmt.Sprintf(format, args...)}
}

// CompileError reports that the serialized document was rejected by the
// external validation engine. Fatal for the Parser being constructed;
// distinct from a value failing validation.
type CompileError struct {
	msg   string
	cause error
}

func (e *CompileError) Error() string { return "jsonshape: schema compilation failed: " + e.msg }
func (e *CompileError) Unwrap() error { return e.cause }

// SyntaxError reports malformed input text handed to Parse.
type SyntaxError struct {
	Offset  int64 // byte offset of the failure; -1 when unknown
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("jsonshape: invalid JSON at offset %d: %s", e.Offset, e.Message)
	}
	return "jsonshape: invalid JSON: " + e.Message
}
