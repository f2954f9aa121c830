// Package config persists editor settings and per-file session state
// under the user's configuration directory. Files are edited in place
// with path-based JSON operations so unknown keys written by newer
// versions survive a round trip.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/ljosa/pagemark/internal/print"
	"github.com/ljosa/pagemark/internal/storage"
)

// DefaultTextWidth is the on-screen wrap width used when no setting is
// stored. It matches the pica print width.
const DefaultTextWidth = 65

// Settings holds the user-adjustable editor options.
type Settings struct {
	// TextWidth is the wrap width for on-screen text.
	TextWidth int

	// Font selects the print font, "pica" or "elite".
	Font string

	// DoubleSpace prints content on every other line.
	DoubleSpace bool

	// PageNumbers prints a centered page number on pages after the
	// first.
	PageNumbers bool
}

// DefaultSettings returns the settings used before any are saved.
func DefaultSettings() Settings {
	return Settings{
		TextWidth:   DefaultTextWidth,
		Font:        print.Pica.String(),
		DoubleSpace: false,
		PageNumbers: true,
	}
}

// Store reads and writes configuration files in a single directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at the user configuration directory,
// like ~/.config/pagemark on Unix-like systems.
func NewStore() (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	return &Store{dir: filepath.Join(configDir, "pagemark")}, nil
}

// NewStoreAt returns a store rooted at an explicit directory.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) settingsPath() string {
	return filepath.Join(s.dir, "settings.json")
}

// LoadSettings reads the stored settings, falling back to defaults for
// missing fields, unreadable files, or out-of-range values.
func (s *Store) LoadSettings() Settings {
	settings := DefaultSettings()

	data, err := os.ReadFile(s.settingsPath())
	if err != nil {
		return settings
	}

	if r := gjson.GetBytes(data, "text_width"); r.Exists() {
		if w := int(r.Int()); w > 0 {
			settings.TextWidth = w
		}
	}
	if r := gjson.GetBytes(data, "font"); r.Exists() {
		settings.Font = print.FontByName(r.String()).String()
	}
	if r := gjson.GetBytes(data, "double_space"); r.Exists() {
		settings.DoubleSpace = r.Bool()
	}
	if r := gjson.GetBytes(data, "page_numbers"); r.Exists() {
		settings.PageNumbers = r.Bool()
	}

	return settings
}

// SaveSettings writes the settings, preserving any unknown keys already
// present in the file.
func (s *Store) SaveSettings(settings Settings) error {
	data, err := os.ReadFile(s.settingsPath())
	if err != nil {
		data = []byte("{}")
	}

	for _, field := range []struct {
		path  string
		value any
	}{
		{"text_width", settings.TextWidth},
		{"font", settings.Font},
		{"double_space", settings.DoubleSpace},
		{"page_numbers", settings.PageNumbers},
	} {
		data, err = sjson.SetBytes(data, field.path, field.value)
		if err != nil {
			return fmt.Errorf("failed to set %s: %w", field.path, err)
		}
	}

	if err := storage.Save(s.settingsPath(), string(data)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
