package analyzer

import (
	"testing"

	"github.com/alidn/lsif-os/internal/langs"
	"github.com/alidn/lsif-os/internal/tsgateway"
	"github.com/alidn/lsif-os/internal/tsquery"
)

const jsFixture = `
// widget does the thing.
function widget() {
  return helper();
}

function helper() {
  return 1;
}
`

func analyze(t *testing.T, tag langs.Tag, source string, content string) ([]*Definition, []*Reference) {
	t.Helper()

	parser, err := tsgateway.MakeParser(tag)
	if err != nil {
		t.Fatalf("MakeParser: %v", err)
	}
	defer parser.Close()

	tree := parser.Parse([]byte(content), nil)
	if tree == nil {
		t.Fatalf("Parse returned nil")
	}
	defer tree.Close()

	query, err := tsgateway.CompileQuery(tag, source)
	if err != nil {
		t.Fatalf("CompileQuery: %v", err)
	}
	defer query.Close()

	names := tsquery.PatternNames(query, source)

	a := New("fixture.js", []byte(content))
	defs, refs, err := a.Run(query, names, tree.RootNode())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return defs, refs
}

func TestAnalyzerFindsTopLevelExportedDefinitions(t *testing.T) {
	_, _, source, err := langs.Lookup(string(langs.JavaScript))
	if err != nil {
		t.Fatalf("langs.Lookup: %v", err)
	}

	defs, refs := analyze(t, langs.JavaScript, source, jsFixture)

	byName := map[string]*Definition{}
	for _, d := range defs {
		byName[d.Name] = d
	}

	widget, ok := byName["widget"]
	if !ok {
		t.Fatalf("expected a definition named widget, got %v", defs)
	}
	if widget.Kind != Exported {
		t.Errorf("expected widget to be Exported, got %v", widget.Kind)
	}
	if widget.Comment == "" {
		t.Errorf("expected widget's preceding comment to be attached")
	}

	if _, ok := byName["helper"]; !ok {
		t.Fatalf("expected a definition named helper, got %v", defs)
	}

	var sawHelperRef bool
	for _, r := range refs {
		if r.Name == "helper" {
			sawHelperRef = true
			if r.Def == nil || r.Def.Name != "helper" {
				t.Errorf("expected the helper() call to resolve to the helper definition")
			}
		}
	}
	if !sawHelperRef {
		t.Fatalf("expected a reference to helper, got %v", refs)
	}

	helper := byName["helper"]
	if helper.Comment == "" {
		t.Errorf("expected helper's hover comment to be synthesized, got empty")
	}
	if helper.Comment == widget.Comment {
		t.Errorf("expected helper's synthesized comment to differ from widget's attached one")
	}
}

func TestAnalyzerFallsBackToZeroScopeOutsideAnyScope(t *testing.T) {
	_, _, source, err := langs.Lookup(string(langs.JavaScript))
	if err != nil {
		t.Fatalf("langs.Lookup: %v", err)
	}

	// A top-level variable_declarator is "definition.scoped" by the query,
	// but nothing at module level introduces a @scope.
	defs, _ := analyze(t, langs.JavaScript, source, "var orphan = 1;\n")

	var found *Definition
	for _, d := range defs {
		if d.Name == "orphan" {
			found = d
		}
	}
	if found == nil {
		t.Fatalf("expected orphan to still be indexed despite having no enclosing scope")
	}
	if found.Kind != Scoped {
		t.Errorf("expected orphan to remain Scoped, got %v", found.Kind)
	}
	if (found.ScopeRange != Range{}) {
		t.Errorf("expected a zero ScopeRange, got %+v", found.ScopeRange)
	}
}
