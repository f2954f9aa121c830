package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	text := "first paragraph\nsecond — with unicode €\n\nlast\n"

	if err := Save(path, text); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != text {
		t.Errorf("Load() = %q, want %q", got, text)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadNormalizesLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dos.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\rc"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != "a\nb\nc" {
		t.Errorf("Load() = %q, want %q", got, "a\nb\nc")
	}
}

func TestLoadReplacesTabs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabs.txt")
	if err := os.WriteFile(path, []byte("a\tb"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != "a b" {
		t.Errorf("Load() = %q, want %q", got, "a b")
	}
}

func TestLoadRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.bin")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted invalid UTF-8")
	}
}

func TestSaveReplacesExistingAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := Save(path, "old contents"); err != nil {
		t.Fatal(err)
	}

	if err := Save(path, "new contents"); err != nil {
		t.Fatalf("Save() over existing file: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "new contents" {
		t.Errorf("Load() = %q, want %q", got, "new contents")
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "doc.txt")

	if err := Save(path, "x"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil || got != "x" {
		t.Errorf("Load() = %q, %v", got, err)
	}
}
