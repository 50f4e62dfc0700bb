// Package walk discovers the source files an indexing run should visit: a
// gitignore-respecting recursive walk rooted at a project directory,
// filtered down to the extensions one language cares about. The directory
// traversal and pattern-accumulation shape (collect patterns walking down
// from the root, test each candidate against the patterns seen so far) is
// the same shape jmylchreest-aide's ignore walker uses; the pattern syntax
// itself is parsed and matched by go-git's gitignore package rather than a
// hand-rolled matcher.
package walk

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/pkg/errors"
)

// alwaysSkip names directories that are never source, regardless of
// gitignore content.
var alwaysSkip = map[string]bool{
	".git": true,
}

// Files returns every file under root whose extension (case-insensitive,
// with or without a leading dot) is in extensions, skipping anything
// excluded by a .gitignore found in root or any directory between root and
// the file. Paths are returned relative to root, sorted for determinism.
func Files(root string, extensions []string) ([]string, error) {
	wanted := map[string]bool{}
	for _, ext := range extensions {
		wanted[normalizeExt(ext)] = true
	}

	fs := osfs.New(root)

	var out []string
	err := visit(fs, root, nil, nil, wanted, &out)
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", root)
	}

	sort.Strings(out)
	return out, nil
}

// visit walks one directory, named by segments relative to root (nil at the
// root itself), extending inherited with any .gitignore patterns found
// there before recursing or matching files.
func visit(fs billy.Filesystem, root string, segments []string, inherited []gitignore.Pattern, wanted map[string]bool, out *[]string) error {
	absDir := filepath.Join(append([]string{root}, segments...)...)

	local, err := gitignore.ReadPatterns(fs, segments)
	if err != nil {
		return errors.Wrapf(err, "reading .gitignore under %s", absDir)
	}

	patterns := inherited
	if len(local) > 0 {
		patterns = append(append([]gitignore.Pattern{}, inherited...), local...)
	}
	matcher := gitignore.NewMatcher(patterns)

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return errors.Wrapf(err, "reading directory %s", absDir)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() && alwaysSkip[name] {
			continue
		}

		childSegments := append(append([]string{}, segments...), name)
		if matcher.Match(childSegments, entry.IsDir()) {
			continue
		}

		if entry.IsDir() {
			if err := visit(fs, root, childSegments, patterns, wanted, out); err != nil {
				return err
			}
			continue
		}

		if wanted[normalizeExt(filepath.Ext(name))] {
			*out = append(*out, filepath.Join(append([]string{}, childSegments...)...))
		}
	}

	return nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
