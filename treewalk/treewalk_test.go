package treewalk

import (
	"os"
	"path/filepath"
	"testing"
)

func mustWriteFile(t *testing.T, path string, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWalkOrderIsDeterministic(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "b.txt"), "b")
	mustWriteFile(t, filepath.Join(root, "a.txt"), "a")
	mustWriteFile(t, filepath.Join(root, ".gitignore"), "")
	mustWriteFile(t, filepath.Join(root, "sub", "z.txt"), "z")
	mustWriteFile(t, filepath.Join(root, "sub", "y.txt"), "y")

	var got []string
	err := Walk(root, nil, func(path string, isDir bool) error {
		rel, _ := filepath.Rel(root, path)
		if isDir {
			rel += "/"
		}
		got = append(got, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	want := []string{".gitignore", "a.txt", "b.txt", "sub/", filepath.Join("sub", "y.txt"), filepath.Join("sub", "z.txt")}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestWalkSkipsSymlinks(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "real.txt"), "x")
	if err := os.Symlink(filepath.Join(root, "real.txt"), filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	var got []string
	err := Walk(root, nil, func(path string, isDir bool) error {
		got = append(got, filepath.Base(path))
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(got) != 1 || got[0] != "real.txt" {
		t.Fatalf("expected only real.txt, got %v", got)
	}
}

func TestIsIgnoreFile(t *testing.T) {
	cases := map[string]bool{
		".gitignore":  true,
		".isccignore": true,
		".ignore":     true,
		"ignore":      false,
		"foo.txt":     false,
	}
	for name, want := range cases {
		if got := IsIgnoreFile(name); got != want {
			t.Errorf("IsIgnoreFile(%q) = %v, want %v", name, got, want)
		}
	}
}
