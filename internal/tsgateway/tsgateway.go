// Package tsgateway is the single seam between this indexer and the
// tree-sitter grammars it links against. It resolves a langs.Tag to a
// compiled *sitter.Language, hands out fresh parsers, and compiles query
// source into a *sitter.Query.
package tsgateway

import (
	"fmt"
	"sync"
	"unsafe"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_graphql "github.com/tree-sitter-grammars/tree-sitter-graphql/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/alidn/lsif-os/internal/langs"
)

var (
	mu        sync.Mutex
	languages = map[langs.Tag]*sitter.Language{}
)

// languageFor returns the compiled grammar for a tag, loading and caching
// it on first use. The four grammars this gateway knows about (every
// registered tag except Lua) are linked in directly via cgo — there is no dynamic loading or download path, since
// the registry's tag set is fixed and small.
func languageFor(tag langs.Tag) (*sitter.Language, error) {
	mu.Lock()
	defer mu.Unlock()

	if lang, ok := languages[tag]; ok {
		return lang, nil
	}

	var ptr unsafe.Pointer
	switch tag {
	case langs.JavaScript:
		ptr = tree_sitter_javascript.Language()
	case langs.TypeScript:
		ptr = tree_sitter_typescript.LanguageTypescript()
	case langs.Java:
		ptr = tree_sitter_java.Language()
	case langs.GraphQL:
		ptr = tree_sitter_graphql.Language()
	default:
		return nil, fmt.Errorf("tsgateway: no grammar linked for %q", tag)
	}

	lang := sitter.NewLanguage(ptr)
	if lang == nil {
		return nil, fmt.Errorf("tsgateway: failed to load grammar for %q", tag)
	}
	languages[tag] = lang
	return lang, nil
}

// MakeParser returns a fresh *sitter.Parser configured for the given tag.
// Callers own the returned parser and must Close it.
func MakeParser(tag langs.Tag) (*sitter.Parser, error) {
	lang, err := languageFor(tag)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	if err := parser.SetLanguage(lang); err != nil {
		parser.Close()
		return nil, fmt.Errorf("tsgateway: set language for %q: %w", tag, err)
	}
	return parser, nil
}

// QueryError reports a query compilation failure at a specific source
// location, mirroring sitter.QueryError without leaking the tree-sitter
// type into callers that only need to report it.
type QueryError struct {
	Line    uint
	Column  uint
	Message string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// CompileQuery compiles query source against the grammar for tag.
func CompileQuery(tag langs.Tag, source string) (*sitter.Query, error) {
	lang, err := languageFor(tag)
	if err != nil {
		return nil, err
	}

	query, qerr := sitter.NewQuery(lang, source)
	if qerr != nil {
		return nil, &QueryError{Line: qerr.Row, Column: qerr.Column, Message: qerr.Message}
	}
	return query, nil
}
