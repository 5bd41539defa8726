package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/file-grouper/internal/model"
)

const (
	AppIcon = "file-grouper.png"
)

// LoadLogoResource loads the logo from file path, falling back to the theme's
// folder icon
func LoadLogoResource() fyne.Resource {
	res, err := fyne.LoadResourceFromPath(AppIcon)
	if err != nil {
		return theme.FolderOpenIcon()
	}
	return res
}

// FileTypeIcon returns the icon shown next to a file of the given type
func FileTypeIcon(ft model.FileType) fyne.Resource {
	switch ft {
	case model.FileTypeVideo:
		return theme.FileVideoIcon()
	case model.FileTypeImage:
		return theme.FileImageIcon()
	case model.FileTypeDocument:
		return theme.FileTextIcon()
	default:
		return theme.FileIcon()
	}
}

// FolderIcon returns the icon shown next to a folder, tinted with the folder color
func FolderIcon() fyne.Resource {
	return theme.NewColoredResource(theme.FolderOpenIcon(), ColorNameFolder)
}
