package main

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/rise-ease/pkg/audio"
	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/borgmon/rise-ease/pkg/store"
)

const savedMessage = "Settings saved successfully"

type SettingsWindow struct {
	window      fyne.Window
	app         fyne.App
	config      *models.Config
	configStore *store.ConfigStore
	onSave      func(*models.Config)
	onSchedule  func(models.WeekSchedule)

	// General tab
	autoStartCheck *widget.Check

	// Alarm tab
	snoozeTimeSelect *widget.Select
	holdTimeSelect   *widget.Select
	ringEnabledCheck *widget.Check

	// Schedule tab
	scheduleURLEntry    *widget.Entry
	scheduleStatusLabel *widget.Label

	// Assistant tab
	apiKeyEntry      *widget.Entry
	modelEntry       *widget.Entry
	baseURLEntry     *widget.Entry
	maxMessagesEntry *widget.Entry

	// UI state
	hasUnsavedChanges bool
	saveStatusLabel   *widget.Label
	saveButton        *widget.Button
}

func NewSettingsWindow(app fyne.App, config *models.Config, configStore *store.ConfigStore, onSave func(*models.Config), onSchedule func(models.WeekSchedule)) *SettingsWindow {
	sw := &SettingsWindow{
		app:         app,
		config:      config,
		configStore: configStore,
		onSave:      onSave,
		onSchedule:  onSchedule,
	}

	sw.window = app.NewWindow("Rise Ease - Settings")
	sw.buildUI()

	return sw
}

func (sw *SettingsWindow) buildUI() {
	tabs := container.NewAppTabs(
		container.NewTabItem("General", sw.buildGeneralTab()),
		container.NewTabItem("Alarm", sw.buildAlarmTab()),
		container.NewTabItem("Schedule", sw.buildScheduleTab()),
		container.NewTabItem("Assistant", sw.buildAssistantTab()),
	)

	sw.saveStatusLabel = widget.NewLabel("")
	sw.saveStatusLabel.Importance = widget.SuccessImportance

	sw.saveButton = widget.NewButton("Save", sw.save)
	sw.saveButton.Importance = widget.HighImportance
	sw.saveButton.Disable()

	previewButton := widget.NewButton("Preview Ring", func() {
		config := sw.getConfigFromUI()
		sample := models.Alarm{
			ID:     -1,
			Name:   "Preview",
			Time:   "7:00",
			Period: models.PeriodAM,
		}
		NewRingWindow(sw.app, sample, RingOptions{
			SnoozeMinutes: config.SnoozeTime,
			HoldTime:      time.Duration(config.HoldTimeSeconds) * time.Second,
			Sound:         audio.Chime(),
		}).Show()
	})

	closeButton := widget.NewButton("Close", sw.handleClose)

	buttonRow := container.NewBorder(
		nil,
		nil,
		container.NewHBox(sw.saveButton, sw.saveStatusLabel),
		container.NewHBox(previewButton, closeButton),
		container.NewHBox(),
	)

	sw.window.SetContent(container.NewBorder(
		nil,
		container.NewPadded(buttonRow),
		nil,
		nil,
		tabs,
	))
	sw.window.Resize(fyne.NewSize(720, 560))
	sw.window.CenterOnScreen()

	sw.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			sw.handleClose()
		}
	})

	sw.window.SetCloseIntercept(sw.handleClose)
}

func (sw *SettingsWindow) save() {
	sw.saveButton.Disable()
	sw.setStatus("Saving...", widget.MediumImportance)

	newConfig := sw.getConfigFromUI()
	go func() {
		if isDesktop(sw.app) {
			if err := setupAutostart(newConfig.AutoStart); err != nil {
				log.Printf("Error setting autostart: %v", err)
				fyne.Do(func() {
					sw.setStatus("Error: Failed to set autostart", widget.DangerImportance)
					sw.updateSaveButtonState()
				})
				return
			}
		}

		fyne.Do(func() {
			if sw.onSave != nil {
				sw.onSave(newConfig)
			}
			sw.config = newConfig
			sw.hasUnsavedChanges = false
			sw.setStatus(savedMessage, widget.SuccessImportance)
			sw.updateSaveButtonState()
		})

		time.Sleep(3 * time.Second)
		fyne.Do(func() {
			if sw.saveStatusLabel.Text == savedMessage {
				sw.setStatus("", widget.SuccessImportance)
			}
		})
	}()
}

func (sw *SettingsWindow) setStatus(text string, importance widget.Importance) {
	sw.saveStatusLabel.SetText(text)
	sw.saveStatusLabel.Importance = importance
	sw.saveStatusLabel.Refresh()
}

func (sw *SettingsWindow) getConfigFromUI() *models.Config {
	config := &models.Config{
		AutoStart:       sw.autoStartCheck.Checked,
		APIKey:          sw.apiKeyEntry.Text,
		Model:           sw.modelEntry.Text,
		BaseURL:         sw.baseURLEntry.Text,
		MaxMessages:     parseOption(sw.maxMessagesEntry.Text, "%d", models.DefaultMaxMessages),
		SnoozeTime:      parseSnoozeOption(sw.snoozeTimeSelect.Selected),
		HoldTimeSeconds: parseOption(sw.holdTimeSelect.Selected, "%d sec", models.DefaultHoldTime),
		RingEnabled:     sw.ringEnabledCheck.Checked,
	}
	config.Normalize()
	return config
}

func (sw *SettingsWindow) Show() {
	sw.window.Show()
}

func (sw *SettingsWindow) markChanged() {
	sw.hasUnsavedChanges = true
	sw.updateSaveButtonState()
}

func (sw *SettingsWindow) updateSaveButtonState() {
	if sw.saveButton == nil {
		return
	}
	if sw.hasUnsavedChanges {
		sw.saveButton.Enable()
	} else {
		sw.saveButton.Disable()
	}
}

// handleClose asks before throwing away unsaved changes
func (sw *SettingsWindow) handleClose() {
	if !sw.hasActualChanges() {
		sw.window.Close()
		return
	}

	dialog.ShowConfirm("Unsaved Changes",
		"You have unsaved changes. Are you sure you want to close?",
		func(confirmed bool) {
			if confirmed {
				sw.window.Close()
			}
		}, sw.window)
}

// hasActualChanges checks if the current UI state differs from the saved config
func (sw *SettingsWindow) hasActualChanges() bool {
	saved := *sw.config
	saved.Normalize()
	return *sw.getConfigFromUI() != saved
}

// parseOption reads the number out of a select option such as "5 sec"
func parseOption(option, format string, fallback int) int {
	var val int
	if _, err := fmt.Sscanf(option, format, &val); err != nil {
		return fallback
	}
	return val
}

func parseSnoozeOption(option string) int {
	if option == snoozeDisabledOption {
		return 0
	}
	return parseOption(option, "%d min", models.DefaultSnoozeTime)
}
