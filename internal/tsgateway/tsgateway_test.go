package tsgateway

import (
	"testing"

	"github.com/alidn/lsif-os/internal/langs"
)

func TestMakeParserForEachEnabledLanguage(t *testing.T) {
	for _, tag := range []langs.Tag{langs.JavaScript, langs.TypeScript, langs.Java, langs.GraphQL} {
		parser, err := MakeParser(tag)
		if err != nil {
			t.Fatalf("MakeParser(%q): %v", tag, err)
		}
		defer parser.Close()
	}
}

func TestCompileQueryRejectsBadSyntax(t *testing.T) {
	_, err := CompileQuery(langs.JavaScript, "(this is not a valid query")
	if err == nil {
		t.Fatalf("expected a query compile error")
	}
	if _, ok := err.(*QueryError); !ok {
		t.Fatalf("expected *QueryError, got %T: %v", err, err)
	}
}

func TestCompileQueryAcceptsRegisteredSource(t *testing.T) {
	_, _, source, err := langs.Lookup(string(langs.JavaScript))
	if err != nil {
		t.Fatalf("langs.Lookup: %v", err)
	}

	if _, err := CompileQuery(langs.JavaScript, source); err != nil {
		t.Fatalf("CompileQuery: %v", err)
	}
}
