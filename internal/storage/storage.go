// Package storage reads and writes document files. Documents are plain
// UTF-8 text; saves are atomic so a crash never leaves a partial file.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Load reads the document at path. Line endings are normalized to "\n"
// and tabs are replaced by single spaces; a trailing newline is kept as
// an empty final paragraph so saving reproduces it.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("failed to read document: %s is not valid UTF-8", path)
	}
	return Normalize(string(data)), nil
}

// Save writes text to path atomically using a temporary file and
// rename. Parent directories are created as needed.
func Save(path, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		// Clean up temp file on failure
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Normalize maps text onto the model's character set: paragraphs
// separated by bare "\n", no carriage returns, no tabs. Load applies it
// to files; the editor applies it to pasted text.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")
	return text
}
