package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Custom color names used by the browser widgets
const (
	ColorNameFolder    fyne.ThemeColorName = "folder"
	ColorNameExtension fyne.ThemeColorName = "extension"
)

// BrowserTheme is the default theme with tighter list spacing and accent
// colors for folders and file extensions
type BrowserTheme struct {
	fyne.Theme
}

// NewBrowserTheme wraps the default theme
func NewBrowserTheme() fyne.Theme {
	return &BrowserTheme{Theme: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *BrowserTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	case ColorNameFolder:
		return color.NRGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}
	case ColorNameExtension:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
		}
		return color.NRGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	}
	return t.Theme.Color(name, variant)
}

// Size returns theme sizes; list rows are denser than the default
func (t *BrowserTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameHeadingText:
		return 20
	}
	return t.Theme.Size(name)
}
