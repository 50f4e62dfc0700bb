package walk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hexops/autogold"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestFilesFiltersByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.js", "")
	writeFile(t, root, "b.ts", "")
	writeFile(t, root, "README.md", "")

	files, err := Files(root, []string{".js"})
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(files) != 1 || files[0] != "a.js" {
		t.Errorf("expected only a.js, got %v", files)
	}
}

func TestFilesHonorsGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.js", "")
	writeFile(t, root, "build/skip.js", "")
	writeFile(t, root, ".gitignore", "build/\n")

	files, err := Files(root, []string{".js"})
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(files) != 1 || files[0] != "keep.js" {
		t.Errorf("expected only keep.js, got %v", files)
	}
}

func TestFilesHonorsNestedGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pkg/keep.js", "")
	writeFile(t, root, "pkg/generated.js", "")
	writeFile(t, root, "pkg/.gitignore", "generated.js\n")

	files, err := Files(root, []string{".js"})
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(files) != 1 || files[0] != filepath.Join("pkg", "keep.js") {
		t.Errorf("expected only pkg/keep.js, got %v", files)
	}
}

func TestFilesSkipsGitDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.js", "")
	writeFile(t, root, ".git/objects/whatever.js", "")

	files, err := Files(root, []string{".js"})
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(files) != 1 || files[0] != "a.js" {
		t.Errorf("expected only a.js, got %v", files)
	}
}

func TestFilesAcrossMixedIgnoresAndExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.ts", "")
	writeFile(t, root, "src/a.js", "")
	writeFile(t, root, "src/vendor/lib.ts", "")
	writeFile(t, root, "src/vendor/.gitignore", "*\n")
	writeFile(t, root, "docs/readme.md", "")
	writeFile(t, root, ".gitignore", "docs/\n")

	files, err := Files(root, []string{".ts", ".js"})
	if err != nil {
		t.Fatalf("Files: %v", err)
	}

	autogold.Want("mixed-ignores", []string{
		filepath.Join("src", "a.js"),
		filepath.Join("src", "a.ts"),
	}).Equal(t, files)
}

func TestNormalizeExt(t *testing.T) {
	cases := map[string]string{
		".JS": ".js",
		"ts":  ".ts",
		"":    "",
	}
	for in, want := range cases {
		if got := normalizeExt(in); got != want {
			t.Errorf("normalizeExt(%q) = %q, want %q", in, got, want)
		}
	}
}
