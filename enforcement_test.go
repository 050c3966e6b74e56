package jsonshape_test

import (
	"testing"

	jsonshape "github.com/reoring/jsonshape"
)

func TestKeywordEnforcement_Classification(t *testing.T) {
	cases := map[string]jsonshape.EnforcementLevel{
		"type":            jsonshape.Enforced,
		"required":        jsonshape.Enforced,
		"additionalItems": jsonshape.PartiallyEnforced,
		"oneOf":           jsonshape.PartiallyEnforced,
		"pattern":         jsonshape.NotEnforced,
		"$ref":            jsonshape.NotEnforced,
		"title":           jsonshape.NoConstraintNeeded,
		"not":             jsonshape.Unsupported,
	}
	for kw, want := range cases {
		if got := jsonshape.KeywordEnforcement[kw]; got != want {
			t.Fatalf("%s: got %s, want %s", kw, got, want)
		}
	}
}

func TestEnforcementLevel_String(t *testing.T) {
	if jsonshape.PartiallyEnforced.String() != "partially-enforced" {
		t.Fatalf("unexpected: %s", jsonshape.PartiallyEnforced)
	}
}
