package jsonshape_test

import (
	"strings"
	"testing"

	jsonshape "github.com/reoring/jsonshape"
	"github.com/reoring/jsonshape/i18n"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := jsonshape.Issues{
		{Path: "/a", Code: "type"},
		{Path: "/b", Code: "required"},
		{Path: "/c", Code: "enum"},
		{Path: "/d", Code: "const"},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	if !strings.Contains(s, "type at /a") {
		t.Fatalf("summary must cite the first issues: %q", s)
	}
	if !strings.Contains(s, "total 4") {
		t.Fatalf("summary must report the total: %q", s)
	}
}

func TestAsIssues(t *testing.T) {
	var err error = jsonshape.Issues{{Path: "/", Code: "type"}}
	iss, ok := jsonshape.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected extraction to succeed")
	}
	if _, ok := jsonshape.AsIssues(nil); ok {
		t.Fatalf("nil must not extract")
	}
}

func TestAppendIssues_InitializesNil(t *testing.T) {
	iss := jsonshape.AppendIssues(nil, jsonshape.Issue{Path: "/", Code: "enum"})
	if len(iss) != 1 {
		t.Fatalf("expected one issue, got %d", len(iss))
	}
}

func TestLocalize_RewritesKnownCodes(t *testing.T) {
	i18n.SetLanguage("en")
	iss := jsonshape.Issues{
		{Path: "/a", Code: "required", Message: "missing properties: 'a'"},
		{Path: "/b", Code: "weird_code", Message: "left alone"},
	}
	out := jsonshape.Localize(iss)
	if out[0].Message != "required property missing" {
		t.Fatalf("known code must be localized: %q", out[0].Message)
	}
	if out[1].Message != "left alone" {
		t.Fatalf("unknown code must keep its message: %q", out[1].Message)
	}
}

func TestSyntaxError_Message(t *testing.T) {
	e := &jsonshape.SyntaxError{Offset: 3, Message: "bad token"}
	if !strings.Contains(e.Error(), "offset 3") {
		t.Fatalf("unexpected message: %q", e.Error())
	}
}
