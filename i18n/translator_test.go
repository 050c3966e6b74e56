package i18n_test

import (
	"testing"

	"github.com/reoring/jsonshape/i18n"
)

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string { return "CODE:" + code }

func TestTranslator_Languages(t *testing.T) {
	i18n.SetLanguage("en")
	if got := i18n.T("required", nil); got != "required property missing" {
		t.Fatalf("unexpected en message: %q", got)
	}
	i18n.SetLanguage("ja")
	if got := i18n.T("required", nil); got == "required property missing" {
		t.Fatalf("language switch had no effect")
	}
	i18n.SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unknown codes must echo, got %q", got)
	}
}

func TestSetTranslator_Replaces(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)
	if got := i18n.T("enum", nil); got != "CODE:enum" {
		t.Fatalf("custom translator not used: %q", got)
	}
}
