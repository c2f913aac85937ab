package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/rise-ease/pkg/calendar"
	"github.com/borgmon/rise-ease/pkg/models"
)

const fetchTimeout = 45 * time.Second

// validateCalendarURL accepts http, https and webcal links
func validateCalendarURL(s string) error {
	if s == "" {
		return fmt.Errorf("URL is required")
	}
	for _, prefix := range []string{"http://", "https://", "webcal://"} {
		if strings.HasPrefix(s, prefix) && len(s) > len(prefix) {
			return nil
		}
	}
	return fmt.Errorf("URL must start with http://, https:// or webcal://")
}

func (sw *SettingsWindow) buildScheduleTab() fyne.CanvasObject {
	sw.scheduleURLEntry = widget.NewEntry()
	sw.scheduleURLEntry.SetPlaceHolder("https://calendar.example.com/ical/...")
	sw.scheduleURLEntry.Validator = validateCalendarURL

	sw.scheduleStatusLabel = widget.NewLabel("")
	sw.scheduleStatusLabel.Wrapping = fyne.TextWrapWord
	sw.scheduleStatusLabel.Importance = widget.MediumImportance

	var fetchButton *widget.Button
	fetchButton = widget.NewButtonWithIcon("Import", theme.DownloadIcon(), func() {
		icalURL := strings.TrimSpace(sw.scheduleURLEntry.Text)
		if err := validateCalendarURL(icalURL); err != nil {
			dialog.ShowError(err, sw.window)
			return
		}

		fetchButton.Disable()
		sw.setScheduleStatus("Fetching calendar...", widget.MediumImportance)

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()

			schedule, err := calendar.FetchSchedule(ctx, icalURL)
			fyne.Do(func() {
				fetchButton.Enable()
				if err != nil {
					log.Printf("Failed to import schedule from %s: %v", icalURL, err)
					sw.setScheduleStatus("Import failed: "+err.Error(), widget.DangerImportance)
					return
				}
				sw.applySchedule(schedule)
			})
		}()
	})

	importFileButton := widget.NewButtonWithIcon("Import File", theme.FolderOpenIcon(), func() {
		open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, sw.window)
				return
			}
			if reader == nil {
				return
			}
			defer reader.Close()

			schedule, err := calendar.ImportSchedule(reader)
			if err != nil {
				log.Printf("Failed to import schedule from %s: %v", reader.URI(), err)
				sw.setScheduleStatus("Import failed: "+err.Error(), widget.DangerImportance)
				return
			}
			sw.applySchedule(schedule)
		}, sw.window)
		open.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
		open.Show()
	})

	exportButton := widget.NewButtonWithIcon("Export File", theme.DocumentSaveIcon(), func() {
		save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, sw.window)
				return
			}
			if writer == nil {
				return
			}

			if err := writeSchedule(writer, sw.configStore.LoadSchedule()); err != nil {
				log.Printf("Failed to export schedule: %v", err)
				sw.setScheduleStatus("Export failed: "+err.Error(), widget.DangerImportance)
				return
			}
			log.Printf("Schedule exported to %s", writer.URI())
			sw.setScheduleStatus("Schedule exported to "+writer.URI().Name(), widget.SuccessImportance)
		}, sw.window)
		save.SetFileName("rise-ease.ics")
		save.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
		save.Show()
	})

	urlLabel := widget.NewLabel("Calendar URL:")
	urlHelp := widget.NewLabel("Weekly events in this calendar become your bed and alarm times")
	urlHelp.Wrapping = fyne.TextWrapWord
	urlHelp.Importance = widget.MediumImportance

	fileLabel := widget.NewLabel("Calendar File:")
	fileHelp := widget.NewLabel("Import an .ics file or export your week as recurring bedtime events")
	fileHelp.Wrapping = fyne.TextWrapWord
	fileHelp.Importance = widget.MediumImportance

	form := container.New(layout.NewFormLayout(),
		container.NewVBox(urlLabel, urlHelp),
		container.NewBorder(nil, nil, nil, fetchButton, sw.scheduleURLEntry),

		container.NewVBox(fileLabel, fileHelp),
		container.NewHBox(importFileButton, exportButton),
	)

	content := container.NewVBox(
		widget.NewLabel("Schedule Settings"),
		widget.NewSeparator(),
		form,
		sw.scheduleStatusLabel,
	)

	return container.NewPadded(container.NewVScroll(content))
}

func (sw *SettingsWindow) setScheduleStatus(text string, importance widget.Importance) {
	sw.scheduleStatusLabel.SetText(text)
	sw.scheduleStatusLabel.Importance = importance
	sw.scheduleStatusLabel.Refresh()
}

// applySchedule stores an imported week and hands it to the home screen
func (sw *SettingsWindow) applySchedule(schedule models.WeekSchedule) {
	sw.configStore.SaveSchedule(schedule)
	if sw.onSchedule != nil {
		sw.onSchedule(schedule)
	}

	monday := schedule[models.Monday]
	sw.setScheduleStatus(fmt.Sprintf("Schedule imported. Monday: bed %s, alarm %s", monday.Bed, monday.Alarm), widget.SuccessImportance)
	log.Println("Sleep schedule imported")
}

func writeSchedule(w io.WriteCloser, schedule models.WeekSchedule) error {
	if err := calendar.ExportSchedule(w, schedule, time.Now()); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
