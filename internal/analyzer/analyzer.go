// Package analyzer extracts definitions and references from a single
// parsed file using a compiled tree-sitter query and its pattern-to-name
// index (internal/tsquery). One Analyzer is created per file and discarded
// after Run returns; it holds no state shared across files.
package analyzer

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/alidn/lsif-os/log"
)

// Kind distinguishes a definition visible across files (exported) from one
// only resolvable within the scope that declares it.
type Kind int

const (
	Exported Kind = iota
	Scoped
)

// Point mirrors a tree-sitter row/column position.
type Point struct {
	Row    uint
	Column uint
}

// Range is a byte-offset span with its row/column bounds for display.
type Range struct {
	StartByte  uint
	EndByte    uint
	StartPoint Point
	EndPoint   Point
}

// Contains reports whether r fully encloses o.
func (r Range) Contains(o Range) bool {
	return r.EndByte >= o.EndByte && r.StartByte <= o.StartByte
}

func (r Range) size() uint {
	return r.EndByte - r.StartByte
}

// Location pairs a range with the file it was found in.
type Location struct {
	Filename string
	Range    Range
}

// Definition is a named declaration found while analyzing a file.
type Definition struct {
	Location   Location
	Name       string
	Comment    string
	Kind       Kind
	ScopeRange Range // meaningful only when Kind == Scoped
}

// Reference is a use of a name found while analyzing a file. Def is set
// when the reference resolves to a definition within the same file;
// otherwise the graph builder resolves it against the cross-file exported
// definition table.
type Reference struct {
	Location Location
	Name     string
	Def      *Definition
}

type scope struct {
	Range Range
}

// Analyzer walks the matches of a compiled query over one file's syntax
// tree and accumulates its definitions and references.
type Analyzer struct {
	filename string
	content  []byte

	defs   map[string][]*Definition
	refs   []*Reference
	scopes []scope

	pendingComment     string
	havePendingComment bool
}

// New creates an Analyzer for a single file's content.
func New(filename string, content []byte) *Analyzer {
	return &Analyzer{
		filename: filename,
		content:  content,
		defs:     map[string][]*Definition{},
	}
}

// Run walks every match of query over root, dispatching by pattern index
// via patternNames (see internal/tsquery.PatternNames), then resolves
// buffered references against file-local definitions. It returns every
// definition found and every reference, file-locally resolved where
// possible.
func (a *Analyzer) Run(query *sitter.Query, patternNames []string, root *sitter.Node) ([]*Definition, []*Reference, error) {
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(query, root, a.content)
	for match := matches.Next(); match != nil; match = matches.Next() {
		if int(match.PatternIndex) >= len(patternNames) {
			continue
		}
		name := patternNames[match.PatternIndex]
		if len(match.Captures) == 0 {
			continue
		}
		node := match.Captures[0].Node
		a.handleMatch(name, &node)
	}

	for _, ref := range a.refs {
		ref.Def = a.findDefFor(ref.Name, ref.Location.Range)
	}

	var defs []*Definition
	for _, ds := range a.defs {
		defs = append(defs, ds...)
	}

	return defs, a.refs, nil
}

func (a *Analyzer) handleMatch(captureName string, node *sitter.Node) {
	switch captureName {
	case "scope":
		a.scopes = append(a.scopes, scope{Range: nodeRange(node)})

	case "comment":
		a.pendingComment = a.nodeText(node)
		a.havePendingComment = true

	case "definition.exported":
		def := &Definition{
			Location: Location{Filename: a.filename, Range: nodeRange(node)},
			Name:     a.nodeText(node),
			Comment:  a.takeCommentOrFallback(node),
			Kind:     Exported,
		}
		a.defs[def.Name] = append(a.defs[def.Name], def)

	case "definition.scoped":
		r := nodeRange(node)
		enclosing, ok := a.findEnclosingScope(r)
		if !ok {
			// No enclosing scope: a warning, not a fatal error — the
			// definition is still indexed, just with a zero scope.
			a.warnf("%s: definition %q has no enclosing scope, indexing with a zero scope", a.filename, a.nodeText(node))
			enclosing = Range{}
		}
		def := &Definition{
			Location:   Location{Filename: a.filename, Range: r},
			Name:       a.nodeText(node),
			Comment:    a.takeCommentOrFallback(node),
			Kind:       Scoped,
			ScopeRange: enclosing,
		}
		a.defs[def.Name] = append(a.defs[def.Name], def)

	case "reference":
		a.refs = append(a.refs, &Reference{
			Location: Location{Filename: a.filename, Range: nodeRange(node)},
			Name:     a.nodeText(node),
		})

	default:
		// Not one of the five canonical names; the query author added
		// something this analyzer doesn't know how to use.
	}
}

// findEnclosingScope returns the innermost scope containing r. Scopes are
// appended in document order as the query matches them, so scanning from
// the most recently appended one backwards finds the innermost enclosing
// scope without needing real stack push/pop bookkeeping.
func (a *Analyzer) findEnclosingScope(r Range) (Range, bool) {
	for i := len(a.scopes) - 1; i >= 0; i-- {
		if a.scopes[i].Range.Contains(r) {
			return a.scopes[i].Range, true
		}
	}
	return Range{}, false
}

// findDefFor resolves a reference to the most specific same-file
// definition it could refer to: the smallest enclosing scoped definition
// wins over any exported definition of the same name, matching the
// original indexer's name resolution order.
func (a *Analyzer) findDefFor(name string, refRange Range) *Definition {
	var best *Definition
	for _, d := range a.defs[name] {
		if d.Kind != Scoped || !d.ScopeRange.Contains(refRange) {
			continue
		}
		if best == nil || best.Kind != Scoped || d.ScopeRange.size() < best.ScopeRange.size() {
			best = d
		}
	}
	if best != nil {
		return best
	}

	for _, d := range a.defs[name] {
		if d.Kind == Exported {
			return d
		}
	}

	return nil
}

// takeCommentOrFallback returns and clears the pending comment if one was
// seen immediately before node, or else synthesizes one from node itself:
// its syntax kind followed by the first line of its own text. A hover panel
// always gets something to show, even for undocumented definitions.
func (a *Analyzer) takeCommentOrFallback(node *sitter.Node) string {
	if a.havePendingComment {
		c := a.pendingComment
		a.pendingComment = ""
		a.havePendingComment = false
		return c
	}
	return node.Kind() + " " + firstLine(a.nodeText(node))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func (a *Analyzer) warnf(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func (a *Analyzer) nodeText(node *sitter.Node) string {
	start := node.StartByte()
	end := node.EndByte()
	if end > uint(len(a.content)) {
		end = uint(len(a.content))
	}
	return string(a.content[start:end])
}

func nodeRange(node *sitter.Node) Range {
	start := node.StartPosition()
	end := node.EndPosition()
	return Range{
		StartByte:  node.StartByte(),
		EndByte:    node.EndByte(),
		StartPoint: Point{Row: start.Row, Column: start.Column},
		EndPoint:   Point{Row: end.Row, Column: end.Column},
	}
}
