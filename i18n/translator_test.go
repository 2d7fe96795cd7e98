package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("duplicate_name", nil); msg == "duplicate_name" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("duplicate_name", nil); msg == "duplicate field name" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
	if msg := T("unknown_code_xyz", nil); msg != "unknown_code_xyz" {
		t.Fatalf("unknown codes pass through, got %q", msg)
	}
}
