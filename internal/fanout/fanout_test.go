package fanout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alidn/lsif-os/internal/langs"
	"github.com/alidn/lsif-os/internal/tsgateway"
	"github.com/alidn/lsif-os/internal/tsquery"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRunDrainsAllFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFixture(t, dir, "a.js", "function a() { return b(); }\n"),
		writeFixture(t, dir, "b.js", "function b() { return 1; }\n"),
	}

	_, _, source, err := langs.Lookup(string(langs.JavaScript))
	if err != nil {
		t.Fatalf("langs.Lookup: %v", err)
	}
	query, err := tsgateway.CompileQuery(langs.JavaScript, source)
	if err != nil {
		t.Fatalf("CompileQuery: %v", err)
	}
	names := tsquery.PatternNames(query, source)

	seen := map[string]bool{}
	defsCh, refsCh, wait := Run(langs.JavaScript, query, names, paths, func(path string, err error) {
		if err != nil {
			t.Errorf("unexpected per-file error for %s: %v", path, err)
		}
	})

	var defCount, refCount int
	done := false
	for !done {
		select {
		case d, ok := <-defsCh:
			if !ok {
				defsCh = nil
				break
			}
			defCount++
			seen[d.Name] = true
		case r, ok := <-refsCh:
			if !ok {
				refsCh = nil
				break
			}
			refCount++
			_ = r
		}
		if defsCh == nil && refsCh == nil {
			done = true
		}
	}

	if err := wait(); err != nil {
		t.Fatalf("wait(): %v", err)
	}

	if defCount != 2 {
		t.Errorf("expected 2 definitions, got %d", defCount)
	}
	if refCount != 1 {
		t.Errorf("expected 1 reference, got %d", refCount)
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("expected definitions a and b, got %v", seen)
	}
}

func TestRunIsolatesPerFileErrors(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFixture(t, dir, "good.js", "function good() {}\n"),
		filepath.Join(dir, "missing.js"),
	}

	_, _, source, err := langs.Lookup(string(langs.JavaScript))
	if err != nil {
		t.Fatalf("langs.Lookup: %v", err)
	}
	query, err := tsgateway.CompileQuery(langs.JavaScript, source)
	if err != nil {
		t.Fatalf("CompileQuery: %v", err)
	}
	names := tsquery.PatternNames(query, source)

	var failed string
	defsCh, refsCh, wait := Run(langs.JavaScript, query, names, paths, func(path string, err error) {
		if err != nil {
			failed = path
		}
	})

	for defsCh != nil || refsCh != nil {
		select {
		case _, ok := <-defsCh:
			if !ok {
				defsCh = nil
			}
		case _, ok := <-refsCh:
			if !ok {
				refsCh = nil
			}
		}
	}

	if err := wait(); err == nil {
		t.Fatalf("expected a parse error for the missing file")
	}
	if failed != paths[1] {
		t.Errorf("expected the missing file to be reported, got %q", failed)
	}
}
