package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/file-grouper/internal/bridge"
	"github.com/ytget/file-grouper/internal/config"
	"github.com/ytget/file-grouper/internal/model"
	"github.com/ytget/file-grouper/internal/navigation"
	"github.com/ytget/file-grouper/internal/picker"
)

// Keyboard shortcuts for history navigation
var (
	shortcutBack    = &desktop.CustomShortcut{KeyName: fyne.KeyLeft, Modifier: fyne.KeyModifierAlt}
	shortcutForward = &desktop.CustomShortcut{KeyName: fyne.KeyRight, Modifier: fyne.KeyModifierAlt}
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	bridge       *bridge.Bridge
	picker       *picker.DialogPicker
	settings     *config.Settings
	localization *Localization
	history      *navigation.History

	// background runs blocking bridge calls, onMain hands results back to
	// the UI goroutine
	background func(func())
	onMain     func(func())

	// UI components
	title         *widget.Label
	openFolderBtn *widget.Button
	homeBtn       *widget.Button
	backBtn       *widget.Button
	forwardBtn    *widget.Button
	breadcrumb    *widget.Label
	navBar        *fyne.Container
	body          *fyne.Container
	scroll        *container.Scroll
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, folderPicker *picker.DialogPicker, b *bridge.Bridge) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		bridge:       b,
		picker:       folderPicker,
		settings:     settings,
		localization: localization,
		history:      navigation.New(),
		background:   func(f func()) { go f() },
		onMain:       fyne.Do,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	logo := canvas.NewImageFromResource(LoadLogoResource())
	logo.SetMinSize(fyne.NewSize(IconSize*1.6, IconSize*1.6))
	logo.FillMode = canvas.ImageFillContain

	ui.title = widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ui.openFolderBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyOpenFolder), theme.FolderOpenIcon(), ui.onSelectRootFolder)
	ui.openFolderBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil,
		container.NewHBox(logo, ui.title),
		container.NewHBox(ui.openFolderBtn, settingsBtn),
	)

	ui.homeBtn = widget.NewButtonWithIcon("", theme.HomeIcon(), ui.GoHome)
	ui.backBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), ui.GoBack)
	ui.forwardBtn = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), ui.GoForward)
	ui.breadcrumb = widget.NewLabel("")
	ui.breadcrumb.Truncation = fyne.TextTruncateEllipsis
	ui.navBar = container.NewBorder(nil, nil,
		container.NewHBox(ui.homeBtn, ui.backBtn, ui.forwardBtn),
		nil,
		ui.breadcrumb,
	)
	ui.navBar.Hide()

	ui.body = container.NewStack()
	ui.scroll = container.NewVScroll(ui.body)
	ui.showWelcome()

	content := container.NewBorder(
		container.NewVBox(header, ui.navBar, widget.NewSeparator()),
		nil, nil, nil,
		newSwipeArea(ui.scroll, ui.GoBack, ui.GoForward),
	)

	ui.window.Canvas().AddShortcut(shortcutBack, func(fyne.Shortcut) { ui.GoBack() })
	ui.window.Canvas().AddShortcut(shortcutForward, func(fyne.Shortcut) { ui.GoForward() })

	ui.window.SetContent(content)
}

// createMenu creates the main menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenFolder), ui.onSelectRootFolder)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	quitItem := fyne.NewMenuItem(ui.localization.GetText(KeyQuit), nil)
	quitItem.IsQuit = true

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(code)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openItem, settingsItem, fyne.NewMenuItemSeparator(), quitItem),
		languageMenu,
	))
}

// onLanguageChange switches and persists the UI language
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts re-applies localized strings and re-renders the body
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.title.SetText(ui.localization.GetText(KeyAppTitle))
	ui.refreshNavigation()

	if ui.history.HasRoot() {
		ui.loadCurrent()
	} else {
		ui.showWelcome()
	}
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.createMenu()
		ui.refreshUITexts()
	})
}

// onSelectRootFolder asks the user for a new root folder through the bridge
func (ui *RootUI) onSelectRootFolder() {
	ui.picker.SetTitle(ui.localization.GetText(KeySelectParentFolder))
	ui.picker.SetStartDir(ui.history.Root())

	ui.background(func() {
		path, err := ui.bridge.SelectFolder(context.Background())
		if err != nil {
			if errors.Is(err, picker.ErrEmptySelection) {
				log.Printf("Folder selection cancelled")
			} else {
				log.Printf("Error selecting folder: %v", err)
			}
			return
		}
		ui.onMain(func() { ui.OpenRoot(path) })
	})
}

// OpenRoot makes path the browsing root and shows its contents
func (ui *RootUI) OpenRoot(path string) {
	log.Printf("Opening root folder: %s", path)
	ui.history.SetRoot(path)
	ui.settings.SetLastRootFolder(path)
	ui.refreshNavigation()
	ui.loadCurrent()
}

// RestoreLastFolder reopens the previous session's root when enabled.
// It reports whether a folder was restored.
func (ui *RootUI) RestoreLastFolder() bool {
	if !ui.settings.GetRestoreLastFolder() {
		return false
	}
	last := ui.settings.GetLastRootFolder()
	if last == "" {
		return false
	}
	ui.OpenRoot(last)
	return true
}

// GoBack moves one step back in history
func (ui *RootUI) GoBack() {
	if ui.history.Back() {
		ui.afterNavigation()
	}
}

// GoForward moves one step forward in history
func (ui *RootUI) GoForward() {
	if ui.history.Forward() {
		ui.afterNavigation()
	}
}

// GoHome returns to the root folder
func (ui *RootUI) GoHome() {
	if ui.history.Home() {
		ui.afterNavigation()
	}
}

func (ui *RootUI) navigateInto(name string) {
	ui.history.NavigateChild(name)
	ui.afterNavigation()
}

func (ui *RootUI) afterNavigation() {
	ui.refreshNavigation()
	ui.loadCurrent()
}

// refreshNavigation syncs the nav bar with the history state
func (ui *RootUI) refreshNavigation() {
	if !ui.history.HasRoot() {
		ui.openFolderBtn.SetText(ui.localization.GetText(KeyOpenFolder))
		ui.navBar.Hide()
		return
	}

	ui.openFolderBtn.SetText(ui.localization.GetText(KeyChangeFolder))
	ui.breadcrumb.SetText(ui.history.DisplayPath())
	setEnabled(ui.homeBtn, ui.history.Current() != ui.history.Root())
	setEnabled(ui.backBtn, ui.history.CanGoBack())
	setEnabled(ui.forwardBtn, ui.history.CanGoForward())
	ui.navBar.Show()
}

func setEnabled(btn *widget.Button, enabled bool) {
	if enabled {
		btn.Enable()
	} else {
		btn.Disable()
	}
}

// loadCurrent reads the current folder off the UI goroutine
func (ui *RootUI) loadCurrent() {
	path := ui.history.Current()
	ui.showStatus(ui.localization.GetText(KeyLoading))

	ui.background(func() {
		listing, err := ui.bridge.ReadDirectory(context.Background(), path)
		ui.onMain(func() { ui.applyListing(path, listing, err) })
	})
}

// applyListing renders a finished read unless the user has moved on
func (ui *RootUI) applyListing(path string, listing *model.DirectoryListing, err error) {
	if path != ui.history.Current() {
		log.Printf("Dropping stale listing for %s", path)
		return
	}
	if err != nil {
		log.Printf("Error reading directory %s: %v", path, err)
		ui.showError(err)
		return
	}
	ui.renderListing(path, listing)
}

// renderListing shows folders first, then files grouped by shared prefix
func (ui *RootUI) renderListing(folder string, listing *model.DirectoryListing) {
	if listing.IsEmpty() {
		ui.showStatus(ui.localization.GetText(KeyEmptyFolder))
		return
	}

	sections := container.NewVBox()

	if len(listing.Folders) > 0 {
		sections.Add(sectionTitle(ui.localization.GetText(KeyFolders)))
		for _, name := range listing.Folders {
			sections.Add(newFolderRow(name, func() { ui.navigateInto(name) }))
		}
	}

	groups := model.GroupFilesByPrefix(listing.Files, ui.settings.GetMinGroupPrefix())
	if len(groups) > 0 {
		if len(listing.Folders) > 0 {
			sections.Add(gap(0, SectionSpacing))
		}
		sections.Add(sectionTitle(ui.localization.GetText(KeyFiles)))
		for _, group := range groups {
			sections.Add(NewFileGroupView(group, folder, ui.localization, ui.onOpenFile).Container())
		}
	}

	ui.setBody(sections)
}

// onOpenFile hands a file to the OS and reports failures in a dialog
func (ui *RootUI) onOpenFile(filePath string) {
	ui.background(func() {
		err := ui.bridge.OpenFile(context.Background(), filePath)
		if err == nil {
			return
		}
		log.Printf("Error opening file %s: %v", filePath, err)
		ui.onMain(func() {
			msg := fmt.Errorf(ErrorPrefixFormat, ui.localization.GetText(KeyErrorOpeningFile), err.Error())
			dialog.ShowError(msg, ui.window)
		})
	})
}

func (ui *RootUI) showWelcome() {
	icon := canvas.NewImageFromResource(theme.FolderOpenIcon())
	icon.SetMinSize(fyne.NewSize(WelcomeIconSize, WelcomeIconSize))
	icon.FillMode = canvas.ImageFillContain

	title := widget.NewLabelWithStyle(ui.localization.GetText(KeyWelcomeTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	text := widget.NewLabel(ui.localization.GetText(KeyWelcomeText))
	text.Alignment = fyne.TextAlignCenter
	text.Wrapping = fyne.TextWrapWord

	openBtn := widget.NewButtonWithIcon(ui.localization.GetText(KeyOpenFolder), theme.FolderOpenIcon(), ui.onSelectRootFolder)
	openBtn.Importance = widget.HighImportance

	ui.setBody(container.NewVBox(
		layout.NewSpacer(),
		icon,
		title,
		text,
		container.NewCenter(openBtn),
		layout.NewSpacer(),
	))
}

func (ui *RootUI) showStatus(message string) {
	label := widget.NewLabel(message)
	label.Alignment = fyne.TextAlignCenter
	label.Importance = widget.LowImportance
	ui.setBody(container.NewCenter(label))
}

func (ui *RootUI) showError(err error) {
	label := widget.NewLabel(fmt.Sprintf(ErrorPrefixFormat, ui.localization.GetText(KeyError), err.Error()))
	label.Importance = widget.DangerImportance
	label.Wrapping = fyne.TextWrapWord
	ui.setBody(container.NewPadded(label))
}

func (ui *RootUI) setBody(content fyne.CanvasObject) {
	ui.body.Objects = []fyne.CanvasObject{content}
	ui.body.Refresh()
	ui.scroll.ScrollToTop()
}
