package lotbook

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettingsPersistAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFile)
	s, err := loadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	s.set(SettingCurrency, "EUR")
	s.set(SettingDefaultTerm, "48")
	s.set(SettingCurrency, "USD") // overwrite wins

	reloaded, err := loadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := reloaded.get(SettingCurrency); !ok || v != "USD" {
		t.Errorf("currency = %q, %v, want USD", v, ok)
	}
	if v, ok := reloaded.get(SettingDefaultTerm); !ok || v != "48" {
		t.Errorf("term = %q, %v, want 48", v, ok)
	}
	if _, ok := reloaded.get("no.such.key"); ok {
		t.Error("unknown key should not be found")
	}
}

func TestSettingsValueMayContainEquals(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFile)
	s, err := loadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	// Only the first separator splits key from value.
	s.set("note", "a=b=c")

	reloaded, err := loadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := reloaded.get("note"); v != "a=b=c" {
		t.Errorf("value = %q, want a=b=c", v)
	}
}

func TestSettingsSkipMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFile)
	content := "currency=USD\nno separator here\n\ndefault.grace.days=7\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := loadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.all()) != 2 {
		t.Errorf("loaded %d settings, want 2", len(s.all()))
	}
	if v, _ := s.get(SettingGraceDays); v != "7" {
		t.Errorf("grace days = %q, want 7", v)
	}
}
