package main

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/rise-ease/pkg/audio"
	"github.com/borgmon/rise-ease/pkg/calendar"
	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/borgmon/rise-ease/pkg/store"
)

// HomeScreen shows the sleep music card, the week strip and the bed and
// alarm cards of the selected day
type HomeScreen struct {
	window      fyne.Window
	configStore *store.ConfigStore
	onAssistant func()

	schedule     models.WeekSchedule
	selectedDay  models.DayOfWeek
	bedEnabled   bool
	alarmEnabled bool
	music        *audio.Player

	content     fyne.CanvasObject
	greeting    *widget.Label
	dayButtons  map[models.DayOfWeek]*widget.Button
	bedTime     *widget.Label
	alarmTime   *widget.Label
	summary     *widget.Label
	musicButton *widget.Button
	musicStatus *widget.Label
}

func NewHomeScreen(window fyne.Window, configStore *store.ConfigStore, onAssistant func()) *HomeScreen {
	hs := &HomeScreen{
		window:       window,
		configStore:  configStore,
		onAssistant:  onAssistant,
		schedule:     configStore.LoadSchedule(),
		selectedDay:  models.Monday,
		bedEnabled:   true,
		alarmEnabled: true,
		dayButtons:   make(map[models.DayOfWeek]*widget.Button),
	}
	hs.buildUI()
	hs.refresh()
	return hs
}

func (hs *HomeScreen) Content() fyne.CanvasObject {
	return hs.content
}

func (hs *HomeScreen) buildUI() {
	hs.greeting = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	hs.greeting.SizeName = theme.SizeNameHeadingText

	// Sleeping music card
	hs.musicStatus = widget.NewLabel("")
	hs.musicButton = widget.NewButtonWithIcon("Play", theme.MediaPlayIcon(), hs.toggleMusic)
	hs.musicButton.Importance = widget.HighImportance
	musicCard := widget.NewCard("Relaxing Sleep Music", "Play soothing music to help you sleep better.",
		container.NewHBox(hs.musicButton, hs.musicStatus))

	// Week strip
	strip := container.NewGridWithColumns(len(models.DaysOfWeek))
	for _, day := range models.DaysOfWeek {
		button := widget.NewButton(string(day), func() {
			hs.selectDay(day)
		})
		hs.dayButtons[day] = button
		strip.Add(button)
	}

	// Bed and alarm cards
	hs.bedTime = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	hs.bedTime.SizeName = theme.SizeNameHeadingText
	bedSwitch := widget.NewCheck("Enabled", func(on bool) {
		hs.bedEnabled = on
		hs.refresh()
	})
	bedSwitch.SetChecked(hs.bedEnabled)
	bedCard := widget.NewCard("Bed time", "", container.NewVBox(
		hs.bedTime,
		container.NewHBox(bedSwitch, widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
			hs.showTimePicker(models.TimeKindBed)
		})),
	))

	hs.alarmTime = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	hs.alarmTime.SizeName = theme.SizeNameHeadingText
	alarmSwitch := widget.NewCheck("Enabled", func(on bool) {
		hs.alarmEnabled = on
		hs.refresh()
	})
	alarmSwitch.SetChecked(hs.alarmEnabled)
	alarmCard := widget.NewCard("Alarm", "", container.NewVBox(
		hs.alarmTime,
		container.NewHBox(alarmSwitch, widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
			hs.showTimePicker(models.TimeKindAlarm)
		})),
	))

	hs.summary = widget.NewLabel("")
	hs.summary.Wrapping = fyne.TextWrapWord

	// Sleep problem card
	assistantButton := widget.NewButton("Go to Assistant", func() {
		if hs.onAssistant != nil {
			hs.onAssistant()
		}
	})
	problemCard := widget.NewCard("Sleeping?", "Have a problem", assistantButton)

	hs.content = container.NewVScroll(container.NewPadded(container.NewVBox(
		hs.greeting,
		musicCard,
		widget.NewLabelWithStyle("Your Sleep Calendar", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		strip,
		container.NewGridWithColumns(2, bedCard, alarmCard),
		hs.summary,
		problemCard,
	)))
}

func (hs *HomeScreen) selectDay(day models.DayOfWeek) {
	hs.selectedDay = day
	hs.refresh()
}

// refresh redraws the screen from the current state
func (hs *HomeScreen) refresh() {
	now := time.Now()
	hs.greeting.SetText(greetingFor(now))

	for day, button := range hs.dayButtons {
		if day == hs.selectedDay {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}

	times := hs.schedule[hs.selectedDay]
	hs.bedTime.SetText(times.Bed)
	hs.alarmTime.SetText(times.Alarm)
	hs.summary.SetText(scheduleSummary(hs.schedule, hs.selectedDay, hs.bedEnabled, hs.alarmEnabled, now))
}

// showTimePicker offers the fixed picker times for one slot of the selected day
func (hs *HomeScreen) showTimePicker(kind models.TimeKind) {
	title := "Set Bed Time for " + string(hs.selectedDay)
	if kind == models.TimeKindAlarm {
		title = "Set Alarm Time for " + string(hs.selectedDay)
	}

	var picker dialog.Dialog
	options := container.NewGridWithColumns(4)
	for _, value := range models.PickerTimes {
		options.Add(widget.NewButton(value, func() {
			hs.setTime(kind, value)
			picker.Hide()
		}))
	}

	picker = dialog.NewCustom(title, "Cancel", options, hs.window)
	picker.Show()
}

func (hs *HomeScreen) setTime(kind models.TimeKind, value string) {
	hs.schedule = hs.schedule.Set(hs.selectedDay, kind, value)
	hs.configStore.SaveSchedule(hs.schedule)
	hs.refresh()
}

// SetSchedule replaces the whole week, e.g. after an import
func (hs *HomeScreen) SetSchedule(schedule models.WeekSchedule) {
	hs.schedule = schedule
	hs.configStore.SaveSchedule(hs.schedule)
	hs.refresh()
}

// Schedule returns the week shown on the screen
func (hs *HomeScreen) Schedule() models.WeekSchedule {
	return hs.schedule
}

func (hs *HomeScreen) toggleMusic() {
	if hs.music != nil {
		hs.StopMusic()
		return
	}

	hs.music = audio.PlayLoop(audio.Lullaby())
	if hs.music == nil {
		dialog.ShowError(fmt.Errorf("no audio output available"), hs.window)
		return
	}
	hs.musicButton.SetText("Stop")
	hs.musicButton.SetIcon(theme.MediaStopIcon())
	hs.musicStatus.SetText("Playing...")
}

// StopMusic stops the sleeping music if it is playing
func (hs *HomeScreen) StopMusic() {
	if hs.music == nil {
		return
	}
	hs.music.Stop()
	hs.music = nil
	hs.musicButton.SetText("Play")
	hs.musicButton.SetIcon(theme.MediaPlayIcon())
	hs.musicStatus.SetText("")
}

// greetingFor picks the header greeting for the time of day
func greetingFor(now time.Time) string {
	switch hour := now.Hour(); {
	case hour >= 5 && hour < 12:
		return "Good Morning"
	case hour >= 12 && hour < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// scheduleSummary describes the selected night and the next enabled bedtime and alarm
func scheduleSummary(schedule models.WeekSchedule, day models.DayOfWeek, bedOn, alarmOn bool, now time.Time) string {
	window, err := schedule.SleepWindow(day)
	if err != nil {
		log.Printf("Invalid %s schedule: %v", day, err)
		return fmt.Sprintf("%s: %s", day, models.DisabledLabel)
	}

	summary := fmt.Sprintf("%s: %s in bed", day, models.FormatDuration(window))

	if bedOn {
		if next, nextDay, err := calendar.NextOccurrence(schedule, models.TimeKindBed, now); err == nil {
			summary += fmt.Sprintf("\nNext bedtime: %s %s (in %s)", nextDay, next.Format("15:04"), models.FormatDuration(next.Sub(now)))
		}
	}
	if alarmOn {
		if next, _, err := calendar.NextOccurrence(schedule, models.TimeKindAlarm, now); err == nil {
			summary += fmt.Sprintf("\nNext alarm: %s %s (in %s)", models.DayFromWeekday(next.Weekday()), next.Format("15:04"), models.FormatDuration(next.Sub(now)))
		}
	}

	return summary
}
