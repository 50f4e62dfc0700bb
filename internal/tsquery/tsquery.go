// Package tsquery extracts, for a compiled tree-sitter query, which of the
// five canonical capture names each of its patterns is meant to dispatch
// to. This is deliberately not done with (*sitter.Query).CaptureNames():
// that method returns the query's capture names deduplicated and in their
// own internal order, which loses the pattern-to-name correspondence the
// moment two patterns both start with, say, "@definition.exported". The
// indexer needs to know which capture name goes with which *pattern*, not
// merely which names appear somewhere in the query.
package tsquery

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// PatternNames returns, for each pattern in query (in pattern order), the
// first capture name written in that pattern's source text — the name that
// identifies what the pattern is for (one of "definition.exported",
// "definition.scoped", "reference", "scope", "comment", or something else
// to be ignored by the analyzer). source must be the exact text the query
// was compiled from.
func PatternNames(query *sitter.Query, source string) []string {
	count := int(query.PatternCount())
	names := make([]string, count)

	for i := 0; i < count; i++ {
		start := int(query.StartByteForPattern(uint(i)))

		end := len(source)
		if i+1 < count {
			end = int(query.StartByteForPattern(uint(i + 1)))
		}

		names[i] = firstCaptureName(source[start:end])
	}

	return names
}

// firstCaptureName returns the text following the first "@" in s, up to
// the next character that cannot appear in a capture name.
func firstCaptureName(s string) string {
	idx := strings.IndexByte(s, '@')
	if idx == -1 {
		return ""
	}

	rest := s[idx+1:]
	end := len(rest)
	for i, r := range rest {
		if !isCaptureNameRune(r) {
			end = i
			break
		}
	}

	return rest[:end]
}

func isCaptureNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
	case r >= 'A' && r <= 'Z':
	case r >= '0' && r <= '9':
	case r == '.' || r == '_' || r == '-':
	default:
		return false
	}
	return true
}
