package config

import (
	"os"

	"fyne.io/fyne/v2"

	"github.com/ytget/file-grouper/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyLastRootFolder    = "last_root_folder"
	KeyRestoreLastFolder = "restore_last_folder"
	KeyMinGroupPrefix    = "min_group_prefix"
	KeyLanguage          = "app_language"
)

// Default values
const (
	DefaultRestoreLastFolder = true
	DefaultMinGroupPrefix    = model.DefaultMinGroupPrefix
	DefaultLanguage          = "system"
)

// Bounds for the grouping prefix length
const (
	MinGroupPrefixLowerBound = 1
	MinGroupPrefixUpperBound = 32
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastRootFolder returns the root folder chosen last time, or "" if none
// was chosen or it no longer exists
func (s *Settings) GetLastRootFolder() string {
	dir := s.app.Preferences().String(KeyLastRootFolder)
	if dir == "" {
		return ""
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return ""
	}
	return dir
}

// SetLastRootFolder remembers the chosen root folder
func (s *Settings) SetLastRootFolder(dir string) {
	s.app.Preferences().SetString(KeyLastRootFolder, dir)
}

// GetRestoreLastFolder returns whether to reopen the last root on start
func (s *Settings) GetRestoreLastFolder() bool {
	return s.app.Preferences().BoolWithFallback(KeyRestoreLastFolder, DefaultRestoreLastFolder)
}

// SetRestoreLastFolder sets whether to reopen the last root on start
func (s *Settings) SetRestoreLastFolder(restore bool) {
	s.app.Preferences().SetBool(KeyRestoreLastFolder, restore)
}

// GetMinGroupPrefix returns the shortest common prefix that groups files
func (s *Settings) GetMinGroupPrefix() int {
	value := s.app.Preferences().Int(KeyMinGroupPrefix)
	if value <= 0 {
		s.SetMinGroupPrefix(DefaultMinGroupPrefix)
		return DefaultMinGroupPrefix
	}
	return value
}

// SetMinGroupPrefix sets the grouping prefix length
func (s *Settings) SetMinGroupPrefix(length int) {
	if length < MinGroupPrefixLowerBound {
		length = MinGroupPrefixLowerBound
	}
	if length > MinGroupPrefixUpperBound {
		length = MinGroupPrefixUpperBound
	}
	s.app.Preferences().SetInt(KeyMinGroupPrefix, length)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
