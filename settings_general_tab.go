package main

import (
	"log"
	"os/exec"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

func (sw *SettingsWindow) buildGeneralTab() fyne.CanvasObject {
	sw.autoStartCheck = widget.NewCheck("Start Rise Ease at login", func(bool) {
		sw.markChanged()
	})
	sw.autoStartCheck.SetChecked(sw.config.AutoStart)

	loginState := widget.NewLabel("")
	loginState.Importance = widget.LowImportance
	if isDesktop(sw.app) {
		if autostartEnabled() {
			loginState.SetText("Login item installed")
		} else {
			loginState.SetText("No login item installed")
		}
	} else {
		sw.autoStartCheck.Disable()
		loginState.SetText("Not available on this device")
	}

	root := sw.app.Storage().RootURI()
	location := widget.NewEntry()
	location.SetText(root.String())
	location.Disable()

	reveal := widget.NewButton("Open in File Manager", func() {
		openInFileManager(root.Path())
	})

	help := func(text string) *widget.Label {
		l := widget.NewLabel(text)
		l.Wrapping = fyne.TextWrapWord
		l.Importance = widget.MediumImportance
		return l
	}

	form := container.New(layout.NewFormLayout(),
		container.NewVBox(widget.NewLabel("Auto Start:"), help("Keep alarms ringing without opening the app first")),
		container.NewVBox(sw.autoStartCheck, loginState),

		container.NewVBox(widget.NewLabel("Storage Location:"), help("Settings and your sleep schedule live here")),
		container.NewBorder(nil, container.NewPadded(reveal), nil, nil, location),
	)

	return container.NewPadded(container.NewVScroll(container.NewVBox(
		widget.NewLabel("General Settings"),
		widget.NewSeparator(),
		form,
	)))
}

// openInFileManager reveals path with the platform's file browser
func openInFileManager(path string) {
	opener, ok := map[string]string{
		"darwin":  "open",
		"windows": "explorer",
		"linux":   "xdg-open",
	}[runtime.GOOS]
	if !ok {
		log.Printf("Unsupported OS: %s", runtime.GOOS)
		return
	}

	if err := exec.Command(opener, path).Start(); err != nil {
		log.Printf("Error opening file manager: %v", err)
	}
}
