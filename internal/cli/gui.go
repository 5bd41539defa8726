package cli

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/file-grouper/internal/bridge"
	"github.com/ytget/file-grouper/internal/config"
	"github.com/ytget/file-grouper/internal/picker"
	"github.com/ytget/file-grouper/internal/ui"
)

// AppID identifies the fyne app, preferences are stored under it
const AppID = "com.ytget.file-grouper"

func runGUI(version, folder string) error {
	log.Printf("File Grouper v%s starting...", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewBrowserTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetIcon(ui.LoadLogoResource())

	settings := config.NewSettings(myApp)
	folderPicker := picker.NewDialogPicker(myWindow)
	b := bridge.New(bridge.Services{Picker: folderPicker})

	root := ui.NewRootUI(myWindow, settings, folderPicker, b)
	if folder != "" {
		root.OpenRoot(folder)
	} else {
		root.RestoreLastFolder()
	}

	myWindow.ShowAndRun()
	return nil
}
