package Reader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mkFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func mkDir(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", name, err)
	}
	return path
}

func TestListOrderingContract(t *testing.T) {
	dir := t.TempDir()
	mkFile(t, dir, "b.txt", 1)
	mkDir(t, dir, "A_folder")
	mkFile(t, dir, "a.txt", 1)
	mkDir(t, dir, "B_folder")

	snapshot, err := NewDirReader().List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"A_folder", "B_folder", "a.txt", "b.txt"}
	if len(snapshot) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(snapshot))
	}
	for i, name := range want {
		if snapshot[i].Name != name {
			t.Errorf("entry %d = %q, want %q", i, snapshot[i].Name, name)
		}
	}
}

func TestListFiltersHidden(t *testing.T) {
	dir := t.TempDir()
	mkFile(t, dir, ".hidden", 1)
	mkDir(t, dir, ".git")
	mkFile(t, dir, "visible.txt", 1)

	snapshot, err := NewDirReader().List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(snapshot) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(snapshot))
	}
	if snapshot[0].Name != "visible.txt" {
		t.Errorf("entry = %q, want visible.txt", snapshot[0].Name)
	}
}

func TestListEntryMetadata(t *testing.T) {
	dir := t.TempDir()
	mkFile(t, dir, "data.go", 128)
	sub := mkDir(t, dir, "sub")

	snapshot, err := NewDirReader().List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(snapshot) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(snapshot))
	}

	d := snapshot[0]
	if !d.IsDir || d.Path != sub || d.Kind != "Folder" {
		t.Errorf("dir entry = %+v", d)
	}
	if d.Size != 0 {
		t.Errorf("dir size = %d, want 0", d.Size)
	}

	f := snapshot[1]
	if f.IsDir || f.Size != 128 {
		t.Errorf("file entry = %+v", f)
	}
	if f.Kind != "GO File" {
		t.Errorf("kind = %q, want GO File", f.Kind)
	}
	if f.ModTime.IsZero() {
		t.Error("file mod time should be set")
	}
}

func TestListUnreadable(t *testing.T) {
	snapshot, err := NewDirReader().List(filepath.Join(t.TempDir(), "gone"))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("err = %v, want ErrUnreadable", err)
	}
	if len(snapshot) != 0 {
		t.Errorf("expected empty snapshot, got %d entries", len(snapshot))
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name  string
		isDir bool
		want  string
	}{
		{"src", true, "Folder"},
		{"main.go", false, "GO File"},
		{"notes.txt", false, "TXT File"},
		{"Makefile", false, "File"},
		{"archive.", false, "File"},
	}
	for _, c := range cases {
		if got := KindOf(c.name, c.isDir); got != c.want {
			t.Errorf("KindOf(%q, %v) = %q, want %q", c.name, c.isDir, got, c.want)
		}
	}
}
