package langs

import "testing"

func TestLookupKnownLanguages(t *testing.T) {
	for _, tag := range []Tag{JavaScript, TypeScript, Java, GraphQL} {
		got, exts, query, err := Lookup(string(tag))
		if err != nil {
			t.Fatalf("Lookup(%q): unexpected error %v", tag, err)
		}
		if got != tag {
			t.Fatalf("Lookup(%q) = %q", tag, got)
		}
		if len(exts) == 0 {
			t.Fatalf("Lookup(%q) returned no extensions", tag)
		}
		if query == "" {
			t.Fatalf("Lookup(%q) returned an empty query", tag)
		}
	}
}

func TestLookupLuaIsDisabled(t *testing.T) {
	_, _, _, err := Lookup("lua")
	if err == nil {
		t.Fatalf("expected an error for lua")
	}
	if _, ok := err.(*DisabledLanguageError); !ok {
		t.Fatalf("expected *DisabledLanguageError, got %T: %v", err, err)
	}
}

func TestLookupUnknownSuggestsNearest(t *testing.T) {
	_, _, _, err := Lookup("javscript")
	uerr, ok := err.(*UnsupportedLanguageError)
	if !ok {
		t.Fatalf("expected *UnsupportedLanguageError, got %T: %v", err, err)
	}
	if uerr.Suggestion != "javascript" {
		t.Fatalf("expected suggestion %q, got %q", "javascript", uerr.Suggestion)
	}
}

func TestLookupUnknownFarAwayHasNoSuggestion(t *testing.T) {
	_, _, _, err := Lookup("cobol")
	uerr, ok := err.(*UnsupportedLanguageError)
	if !ok {
		t.Fatalf("expected *UnsupportedLanguageError, got %T: %v", err, err)
	}
	if uerr.Suggestion != "" {
		t.Fatalf("expected no suggestion, got %q", uerr.Suggestion)
	}
}

func TestEnabled(t *testing.T) {
	if !Enabled(JavaScript) {
		t.Fatalf("expected javascript to be enabled")
	}
	if Enabled(Lua) {
		t.Fatalf("expected lua to be disabled")
	}
}
