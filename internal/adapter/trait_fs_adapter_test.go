package adapter

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	m "traitpack.dev/pkg/traitpack/internal/model"
)

func TestLocalTraitFSAdapter_ReadDir(t *testing.T) {
	adapter := NewLocalTraitFSAdapter()

	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "b_eyes"))
	mustMkdir(t, filepath.Join(root, "a_hats"))
	writeTestFile(t, filepath.Join(root, "readme.txt"), "ignored")

	entries, err := adapter.ReadDir(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	want := []string{"a_hats", "b_eyes", "readme.txt"}
	if len(names) != len(want) {
		t.Fatalf("ReadDir() = %v, want %v", names, want)
	}

	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ReadDir() = %v, want %v", names, want)
		}
	}

	t.Run("missing directory", func(t *testing.T) {
		_, err := adapter.ReadDir(context.Background(), m.Path(filepath.Join(root, "missing")))
		if err == nil {
			t.Fatalf("ReadDir() expected error for missing directory")
		}
	})
}

func TestLocalTraitFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files in lexical order", func(t *testing.T) {
		adapter := NewLocalTraitFSAdapter()

		root := t.TempDir()
		nested := filepath.Join(root, "nested")
		mustMkdir(t, nested)
		writeTestFile(t, filepath.Join(root, "b.svg"), "<svg/>")
		writeTestFile(t, filepath.Join(root, "a.svg"), "<svg/>")
		writeTestFile(t, filepath.Join(nested, "c.png"), "png")

		visited := collectFiles(t, adapter, root)

		want := []string{
			filepath.Join(root, "a.svg"),
			filepath.Join(root, "b.svg"),
			filepath.Join(nested, "c.png"),
		}

		if len(visited) != len(want) {
			t.Fatalf("Walk() visited %v, want %v", visited, want)
		}

		for i := range want {
			if visited[i] != want[i] {
				t.Fatalf("Walk() visited %v, want %v", visited, want)
			}
		}
	})

	t.Run("resolves symlinked root", func(t *testing.T) {
		adapter := NewLocalTraitFSAdapter()

		target := t.TempDir()
		writeTestFile(t, filepath.Join(target, "cap.svg"), "<svg/>")

		link := filepath.Join(t.TempDir(), "hats")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		visited := collectFiles(t, adapter, link)

		if !containsPath(visited, filepath.Join(link, "cap.svg")) {
			t.Fatalf("Walk() = %v, want path under symlinked root", visited)
		}
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		adapter := NewLocalTraitFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a.svg"), "<svg/>")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.Walk(ctx, m.Path(root), func(string, fs.DirEntry, error) error { return nil })
		if err == nil {
			t.Fatalf("Walk() expected context error")
		}
	})
}

func TestLocalTraitFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalTraitFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "cap.svg")
	content := "<svg xmlns=\"http://www.w3.org/2000/svg\"/>\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalTraitFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalTraitFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "cap.svg")
	writeTestFile(t, path, "<svg/>")

	info, err := adapter.FileInfo(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func TestLocalTraitFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalTraitFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "traits.json")
	writeTestFile(t, path, "old")

	if err := adapter.WriteFile(context.Background(), m.Path(path), []byte("new"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if string(got) != "new" {
		t.Fatalf("WriteFile() left %q, want %q", got, "new")
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("WriteFile() left temp files behind: %d entries", len(entries))
	}

	t.Run("missing directory", func(t *testing.T) {
		missing := filepath.Join(root, "missing", "traits.json")
		if err := adapter.WriteFile(context.Background(), m.Path(missing), []byte("x"), 0o644); err == nil {
			t.Fatalf("WriteFile() expected error for missing directory")
		}
	})
}

func TestLocalTraitFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalTraitFSAdapter()

	base := m.Path("/tmp/traits")
	target := m.Path("/tmp/traits/hats/cap.svg")

	rel, err := adapter.RelPath(base, target)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if string(rel) != filepath.Join("hats", "cap.svg") {
		t.Fatalf("RelPath() = %s, want %s", rel, filepath.Join("hats", "cap.svg"))
	}

	joined := adapter.JoinPath("/tmp", "traits", "hats")
	if string(joined) != filepath.Join("/tmp", "traits", "hats") {
		t.Fatalf("JoinPath() = %s, want %s", joined, filepath.Join("/tmp", "traits", "hats"))
	}
}

func collectFiles(t *testing.T, adapter *LocalTraitFSAdapter, root string) []string {
	t.Helper()

	var visited []string

	err := adapter.Walk(context.Background(), m.Path(root), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.Type().IsRegular() {
			visited = append(visited, path)
		}

		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	return visited
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
