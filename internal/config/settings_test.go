package config

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLastRootFolder(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Nothing chosen yet
	if dir := settings.GetLastRootFolder(); dir != "" {
		t.Errorf("Expected empty last root folder, got %s", dir)
	}

	dir := t.TempDir()
	settings.SetLastRootFolder(dir)
	if got := settings.GetLastRootFolder(); got != dir {
		t.Errorf("Expected last root folder %s, got %s", dir, got)
	}

	// A folder that has since disappeared is not offered again
	settings.SetLastRootFolder(filepath.Join(dir, "gone"))
	if got := settings.GetLastRootFolder(); got != "" {
		t.Errorf("Expected missing folder to be ignored, got %s", got)
	}
}

func TestRestoreLastFolder(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetRestoreLastFolder() != DefaultRestoreLastFolder {
		t.Errorf("Expected default restore %v", DefaultRestoreLastFolder)
	}

	settings.SetRestoreLastFolder(false)
	if settings.GetRestoreLastFolder() {
		t.Error("Expected restore to be disabled")
	}
}

func TestMinGroupPrefix(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetMinGroupPrefix(); got != DefaultMinGroupPrefix {
		t.Errorf("Expected default min group prefix %d, got %d", DefaultMinGroupPrefix, got)
	}

	settings.SetMinGroupPrefix(5)
	if got := settings.GetMinGroupPrefix(); got != 5 {
		t.Errorf("Expected min group prefix 5, got %d", got)
	}

	// Test boundary values
	settings.SetMinGroupPrefix(0)
	if settings.GetMinGroupPrefix() != MinGroupPrefixLowerBound {
		t.Errorf("Min group prefix should be clamped to %d", MinGroupPrefixLowerBound)
	}

	settings.SetMinGroupPrefix(100)
	if settings.GetMinGroupPrefix() != MinGroupPrefixUpperBound {
		t.Errorf("Min group prefix should be clamped to %d", MinGroupPrefixUpperBound)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
