package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s := NewStoreAt(t.TempDir())

	got := s.LoadSettings()
	want := DefaultSettings()
	if got != want {
		t.Errorf("LoadSettings() = %+v, want %+v", got, want)
	}
	if got.TextWidth != 65 || got.Font != "pica" {
		t.Errorf("defaults = %+v", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := NewStoreAt(t.TempDir())

	want := Settings{TextWidth: 40, Font: "elite", DoubleSpace: true, PageNumbers: false}
	if err := s.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}

	if got := s.LoadSettings(); got != want {
		t.Errorf("LoadSettings() = %+v, want %+v", got, want)
	}
}

func TestSaveSettingsPreservesUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	s := NewStoreAt(dir)
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(`{"text_width":30,"future_option":"kept"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := s.SaveSettings(Settings{TextWidth: 50, Font: "pica", PageNumbers: true}); err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(data, "future_option").String(); got != "kept" {
		t.Errorf("future_option = %q, want kept", got)
	}
	if got := gjson.GetBytes(data, "text_width").Int(); got != 50 {
		t.Errorf("text_width = %d, want 50", got)
	}
}

func TestLoadSettingsSanitizes(t *testing.T) {
	dir := t.TempDir()
	s := NewStoreAt(dir)
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(`{"text_width":-3,"font":"Comic Sans"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	got := s.LoadSettings()
	if got.TextWidth != DefaultTextWidth {
		t.Errorf("TextWidth = %d, want default %d for a negative value", got.TextWidth, DefaultTextWidth)
	}
	if got.Font != "pica" {
		t.Errorf("Font = %q, want pica for an unknown name", got.Font)
	}
}
