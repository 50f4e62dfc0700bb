package indexer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alidn/lsif-os/internal/langs"
	"github.com/alidn/lsif-os/internal/output"
	"github.com/alidn/lsif-os/internal/writer"
	"github.com/alidn/lsif-os/protocol"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestIndexEmitsCrossFileResolvedGraph(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.js", "function helper() { return 1; }\n")
	writeFixture(t, dir, "b.js", "function main() { return helper(); }\n")

	mw := writer.NewMemoryWriter()
	ix := New(mw, Options{
		ProjectRoot: dir,
		Language:    langs.JavaScript,
		ToolInfo:    protocol.ToolInfo{Name: "lsif-os-test"},
		Output:      output.Options{Verbosity: output.NoOutput},
	})

	stats, err := ix.Index()
	if err != nil {
		t.Fatalf("Index: %v", err)
	}

	if stats.NumFiles != 2 {
		t.Errorf("expected 2 files, got %d", stats.NumFiles)
	}
	if stats.NumDefs != 2 {
		t.Errorf("expected 2 definitions, got %d", stats.NumDefs)
	}
	if stats.NumRefs != 1 {
		t.Errorf("expected 1 reference, got %d", stats.NumRefs)
	}

	var sawExportedMoniker, sawMonikerEdge, sawPackageInfo bool
	var nextEdges int
	for _, rec := range mw.Records() {
		switch v := rec.(type) {
		case *protocol.Moniker:
			if v.Kind == "exported" {
				sawExportedMoniker = true
			}
		case *protocol.MonikerEdge:
			sawMonikerEdge = true
		case *protocol.PackageInformation:
			sawPackageInfo = true
		case *protocol.Next:
			nextEdges++
		}
	}

	if !sawExportedMoniker {
		t.Errorf("expected an exported moniker for helper()")
	}
	if !sawMonikerEdge {
		t.Errorf("expected a moniker edge")
	}
	if !sawPackageInfo {
		t.Errorf("expected a packageInformation vertex for the exported moniker")
	}
	// One next edge per definition's range->resultSet, plus one per
	// reference's range->the definition's resultSet: 2 definitions + 1
	// reference = 3.
	if nextEdges != 3 {
		t.Errorf("expected 3 next edges, got %d", nextEdges)
	}
}

func TestIndexReportsUnresolvedLanguage(t *testing.T) {
	dir := t.TempDir()
	mw := writer.NewMemoryWriter()
	ix := New(mw, Options{
		ProjectRoot: dir,
		Language:    "nope",
		Output:      output.Options{Verbosity: output.NoOutput},
	})

	if _, err := ix.Index(); err == nil {
		t.Fatalf("expected an error for an unsupported language")
	}
}
