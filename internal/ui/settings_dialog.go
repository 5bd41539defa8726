package ui

import (
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/file-grouper/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// language display label -> code
	languageCodes map[string]string

	// UI components
	restoreCheck   *widget.Check
	minPrefixEntry *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.restoreCheck = widget.NewCheck(sd.localization.GetText(KeyRestoreLastFolder), nil)

	sd.minPrefixEntry = widget.NewEntry()
	sd.minPrefixEntry.SetPlaceHolder(strconv.Itoa(config.MinGroupPrefixLowerBound) + "-" + strconv.Itoa(config.MinGroupPrefixUpperBound))
	sd.minPrefixEntry.Validator = func(s string) error {
		_, err := strconv.Atoi(s)
		return err
	}

	sd.languageCodes = make(map[string]string)
	var labels []string
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		labels = append(labels, label)
	}
	slices.Sort(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle(sd.localization.GetText(KeyBrowsingSettings), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		sd.restoreCheck,
		widget.NewLabel(sd.localization.GetText(KeyMinGroupPrefix)+":"),
		sd.minPrefixEntry,

		widget.NewSeparator(),
		widget.NewLabelWithStyle(sd.localization.GetText(KeyInterfaceSettings), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.restoreCheck.SetChecked(sd.settings.GetRestoreLastFolder())
	sd.minPrefixEntry.SetText(strconv.Itoa(sd.settings.GetMinGroupPrefix()))

	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
			break
		}
	}
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form values to settings. Unparsable numbers are ignored,
// out of range ones are clamped by the settings layer.
func (sd *SettingsDialog) apply() {
	sd.settings.SetRestoreLastFolder(sd.restoreCheck.Checked)

	if n, err := strconv.Atoi(sd.minPrefixEntry.Text); err == nil {
		sd.settings.SetMinGroupPrefix(n)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
