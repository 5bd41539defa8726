package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/file-grouper/internal/model"
)

// tappableRow makes arbitrary row content respond to taps
type tappableRow struct {
	widget.BaseWidget
	content  fyne.CanvasObject
	onTapped func()
}

var (
	_ fyne.Tappable      = (*tappableRow)(nil)
	_ desktop.Cursorable = (*tappableRow)(nil)
)

func newTappableRow(content fyne.CanvasObject, onTapped func()) *tappableRow {
	r := &tappableRow{content: content, onTapped: onTapped}
	r.ExtendBaseWidget(r)
	return r
}

func (r *tappableRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}

func (r *tappableRow) Tapped(*fyne.PointEvent) {
	if r.onTapped != nil {
		r.onTapped()
	}
}

func (r *tappableRow) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// fileNameText shows a file name with its extension in a muted color
func fileNameText(name string) *widget.RichText {
	base, ext := model.SplitExtension(name)
	if base == "" {
		base, ext = name, ""
	}
	segments := []widget.RichTextSegment{
		&widget.TextSegment{Text: base, Style: widget.RichTextStyleInline},
	}
	if ext != "" {
		segments = append(segments, &widget.TextSegment{
			Text: ext,
			Style: widget.RichTextStyle{
				Inline:    true,
				ColorName: ColorNameExtension,
			},
		})
	}
	return widget.NewRichText(segments...)
}

// newFolderRow renders a folder entry that navigates into the folder on tap
func newFolderRow(name string, onTapped func()) *tappableRow {
	label := widget.NewLabel(name)
	label.Truncation = fyne.TextTruncateEllipsis
	content := container.NewBorder(nil, nil,
		widget.NewIcon(FolderIcon()),
		widget.NewIcon(theme.NavigateNextIcon()),
		label,
	)
	return newTappableRow(content, onTapped)
}

// sectionTitle renders a section heading such as "Folders"
func sectionTitle(text string) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	return container.NewVBox(title, widget.NewSeparator())
}

// gap is empty space of a fixed minimum size
func gap(width, height float32) fyne.CanvasObject {
	rect := canvas.NewRectangle(color.Transparent)
	rect.SetMinSize(fyne.NewSize(width, height))
	return rect
}

// indented pads content on the leading edge
func indented(content fyne.CanvasObject, by float32) fyne.CanvasObject {
	return container.New(layout.NewCustomPaddedLayout(0, 0, by, 0), content)
}
