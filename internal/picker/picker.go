// Package picker shows the folder selection dialog and reports the chosen
// folder as an absolute path.
package picker

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// DefaultTitle labels the dialog's confirm action
const DefaultTitle = "Select Parent Folder"

// ErrEmptySelection is returned when the dialog is dismissed without a choice
var ErrEmptySelection = errors.New("no folder selected")

// FolderPicker asks the user for a folder
type FolderPicker interface {
	SelectFolder(ctx context.Context) (string, error)
}

// folderDialog is the part of *dialog.FileDialog the picker drives
type folderDialog interface {
	Show()
	Hide()
}

// newFolderDialog is replaced in tests
var newFolderDialog = func(title, startDir string, callback func(fyne.ListableURI, error), parent fyne.Window) folderDialog {
	d := dialog.NewFolderOpen(callback, parent)
	d.SetConfirmText(title)
	if startDir != "" {
		if location, err := storage.ListerForURI(storage.NewFileURI(startDir)); err == nil {
			d.SetLocation(location)
		}
	}
	return d
}

// DialogPicker selects a folder with the fyne folder dialog on a window
type DialogPicker struct {
	window   fyne.Window
	title    string
	startDir string
	do       func(func())
}

var _ FolderPicker = (*DialogPicker)(nil)

// NewDialogPicker creates a picker whose dialog is modal to window
func NewDialogPicker(window fyne.Window) *DialogPicker {
	return &DialogPicker{
		window: window,
		title:  DefaultTitle,
		do:     fyne.Do,
	}
}

// SetTitle changes the dialog's confirm label
func (p *DialogPicker) SetTitle(title string) {
	if title == "" {
		title = DefaultTitle
	}
	p.title = title
}

// SetStartDir sets the folder the dialog opens in. Missing folders are ignored.
func (p *DialogPicker) SetStartDir(dir string) {
	p.startDir = dir
}

// SelectFolder shows the dialog and waits for the user. It must not be
// called on the fyne event goroutine. Cancelling ctx hides the dialog.
func (p *DialogPicker) SelectFolder(ctx context.Context) (string, error) {
	type result struct {
		path string
		err  error
	}
	done := make(chan result, 1)

	var d folderDialog
	p.do(func() {
		d = newFolderDialog(p.title, p.startDir, func(uri fyne.ListableURI, err error) {
			path, err := selectionResult(uri, err)
			done <- result{path: path, err: err}
		}, p.window)
		d.Show()
	})

	select {
	case r := <-done:
		return r.path, r.err
	case <-ctx.Done():
		p.do(func() {
			if d != nil {
				d.Hide()
			}
		})
		log.Printf("Folder selection abandoned: %v", ctx.Err())
		return "", ctx.Err()
	}
}

func selectionResult(uri fyne.ListableURI, err error) (string, error) {
	if err != nil {
		return "", fmt.Errorf("folder dialog: %w", err)
	}
	if uri == nil {
		return "", ErrEmptySelection
	}
	return uri.Path(), nil
}
