package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window defaults
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 640
)

// Text fragments
const (
	ErrorPrefixFormat = "%s: %s"
)

// Layout sizing
const (
	IconSize        float32 = 20
	ChevronSize     float32 = 14
	WelcomeIconSize float32 = 72
	FileRowIndent   float32 = 28
	SectionSpacing  float32 = 12
	SettingsDialogW float32 = 460
	SettingsDialogH float32 = 320
)

// Gesture thresholds
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)
