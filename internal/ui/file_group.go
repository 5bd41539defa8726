package ui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/file-grouper/internal/model"
)

// FileGroupView renders one file group. A single file opens on tap; a group
// of several files expands to list them, each opening on tap.
type FileGroupView struct {
	group        model.FileGroup
	folder       string
	localization *Localization
	onOpen       func(filePath string)

	expanded bool

	// UI components
	header    *tappableRow
	chevron   *widget.Icon
	fileRows  []*tappableRow
	fileList  *fyne.Container
	container *fyne.Container
}

// NewFileGroupView creates the view for group, whose files live in folder
func NewFileGroupView(group model.FileGroup, folder string, localization *Localization, onOpen func(string)) *FileGroupView {
	v := &FileGroupView{
		group:        group,
		folder:       folder,
		localization: localization,
		onOpen:       onOpen,
	}
	v.createUI()
	return v
}

// Container returns the root canvas object of the view
func (v *FileGroupView) Container() *fyne.Container {
	return v.container
}

// IsExpanded reports whether the member list is shown
func (v *FileGroupView) IsExpanded() bool {
	return v.expanded
}

func (v *FileGroupView) createUI() {
	if len(v.group.Files) == 0 {
		v.container = container.NewVBox()
		return
	}

	typeIcon := widget.NewIcon(FileTypeIcon(model.FileTypeOf(v.group.Files[0])))

	if v.group.IsSingle() {
		name := v.group.Files[0]
		row := container.NewBorder(nil, nil, container.NewHBox(gap(ChevronSize, 0), typeIcon), nil, fileNameText(name))
		v.header = newTappableRow(row, func() { v.open(name) })
		v.container = container.NewVBox(v.header)
		return
	}

	v.chevron = widget.NewIcon(theme.NavigateNextIcon())
	title := widget.NewLabelWithStyle(v.group.DisplayName(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.Truncation = fyne.TextTruncateEllipsis
	count := widget.NewLabel(fmt.Sprintf(v.localization.GetText(KeyFilesCount), len(v.group.Files)))
	count.Importance = widget.LowImportance

	row := container.NewBorder(nil, nil, container.NewHBox(v.chevron, typeIcon), count, title)
	v.header = newTappableRow(row, v.Toggle)

	v.fileList = container.NewVBox()
	for _, name := range v.group.Files {
		fileRow := newTappableRow(
			container.NewBorder(nil, nil, widget.NewIcon(FileTypeIcon(model.FileTypeOf(name))), nil, fileNameText(name)),
			func() { v.open(name) },
		)
		v.fileRows = append(v.fileRows, fileRow)
		v.fileList.Add(fileRow)
	}
	v.fileList.Hide()

	v.container = container.NewVBox(v.header, indented(v.fileList, FileRowIndent))
}

// Toggle expands or collapses a multi-file group
func (v *FileGroupView) Toggle() {
	if v.group.IsSingle() || v.fileList == nil {
		return
	}
	v.expanded = !v.expanded
	if v.expanded {
		v.chevron.SetResource(theme.MoveDownIcon())
		v.fileList.Show()
	} else {
		v.chevron.SetResource(theme.NavigateNextIcon())
		v.fileList.Hide()
	}
	v.container.Refresh()
}

func (v *FileGroupView) open(name string) {
	if v.onOpen != nil {
		v.onOpen(filepath.Join(v.folder, name))
	}
}
