package ui

// Package ui contains the Fyne-based desktop user interface: choosing a root
// folder, browsing its subfolders with back/forward history, and showing the
// files of a folder grouped by shared name prefix. All backend calls go
// through the handler bridge. All UI strings are localized via Localization.
