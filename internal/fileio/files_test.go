package fileio

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func TestValidateExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.tsv")
	if err := os.WriteFile(path, []byte("a\tb\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	t.Run("extension appended", func(t *testing.T) {
		got, err := ValidateExtension(filepath.Join(dir, "data"), "tsv")
		if err != nil {
			t.Fatalf("ValidateExtension failed: %v", err)
		}
		if got != path {
			t.Errorf("path = %q, want %q", got, path)
		}
	})

	t.Run("dot already present", func(t *testing.T) {
		got, err := ValidateExtension(path, ".tsv")
		if err != nil {
			t.Fatalf("ValidateExtension failed: %v", err)
		}
		if got != path {
			t.Errorf("path = %q, want %q", got, path)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ValidateExtension(filepath.Join(dir, "nope"), "tsv"); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}

func TestSubdirectories(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"b", "a"} {
		if err := os.Mkdir(filepath.Join(dir, sub), 0755); err != nil {
			t.Fatalf("failed to create subdir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "file.txt"), nil, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, err := Subdirectories(dir)
	if err != nil {
		t.Fatalf("Subdirectories failed: %v", err)
	}
	sort.Strings(got)
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Subdirectories = %v, want [a b]", got)
	}
}

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"vendors.txt":          "a\n",
		"nested/products.list": "b\n",
		"nested/waiver.txt":    "c\n",
		"notes.md":             "- d\n",
		"binary.bin":           "e",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
	}

	got, err := FindFiles(dir, []string{"txt", ".list"}, []string{"waiver"})
	if err != nil {
		t.Fatalf("FindFiles failed: %v", err)
	}
	sort.Strings(got)
	want := []string{
		filepath.Join(dir, "nested/products.list"),
		filepath.Join(dir, "vendors.txt"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindFiles = %v, want %v", got, want)
	}
}

func TestFileSHA256(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashed.txt")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	got, err := FileSHA256(path)
	if err != nil {
		t.Fatalf("FileSHA256 failed: %v", err)
	}
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("hash = %s, want %s", got, want)
	}
}
