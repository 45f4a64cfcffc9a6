package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomic_Overwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "init.rb")

	if err := os.WriteFile(path, []byte("name 'old'\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	updated := []byte("name 'new'\n")
	if err := WriteFileAtomic(path, updated, 0o640); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != string(updated) {
		t.Errorf("content = %q, want %q", got, updated)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Errorf("perm = %v, want 0640", info.Mode().Perm())
	}
	assertNoTempFiles(t, dir)
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "init.rb")
	if err := WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestWriteFileExclusive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "init.rb.backup.20250101_010101")

	if err := WriteFileExclusive(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("first write: %v", err)
	}
	err := WriteFileExclusive(path, []byte("second"), 0o644)
	if !errors.Is(err, os.ErrExist) {
		t.Fatalf("second write error = %v, want ErrExist", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "first" {
		t.Fatalf("existing file was modified: %q", got)
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".plugin-setup-tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}
