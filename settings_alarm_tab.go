package main

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const snoozeDisabledOption = "0 min (disabled)"

func snoozeOptions() []string {
	options := []string{snoozeDisabledOption}
	for m := 1; m <= 15; m++ {
		options = append(options, strconv.Itoa(m)+" min")
	}
	return options
}

func holdTimeOptions() []string {
	options := make([]string, 0, 10)
	for s := 1; s <= 10; s++ {
		options = append(options, strconv.Itoa(s)+" sec")
	}
	return options
}

func (sw *SettingsWindow) buildAlarmTab() fyne.CanvasObject {
	sw.snoozeTimeSelect = widget.NewSelect(snoozeOptions(), func(string) {
		sw.markChanged()
	})
	if sw.config.SnoozeTime == 0 {
		sw.snoozeTimeSelect.SetSelected(snoozeDisabledOption)
	} else {
		sw.snoozeTimeSelect.SetSelected(strconv.Itoa(min(sw.config.SnoozeTime, 15)) + " min")
	}

	sw.holdTimeSelect = widget.NewSelect(holdTimeOptions(), func(string) {
		sw.markChanged()
	})
	sw.holdTimeSelect.SetSelected(strconv.Itoa(max(1, min(sw.config.HoldTimeSeconds, 10))) + " sec")

	sw.ringEnabledCheck = widget.NewCheck("Ring Enabled Alarms", func(bool) {
		sw.markChanged()
	})
	sw.ringEnabledCheck.SetChecked(sw.config.RingEnabled)

	snoozeLabel := widget.NewLabel("Snooze Duration:")
	snoozeHelp := widget.NewLabel("Set to 0 to disable snooze functionality")
	snoozeHelp.Importance = widget.MediumImportance

	holdTimeLabel := widget.NewLabel("Button Hold Time:")
	holdTimeHelp := widget.NewLabel("How long to hold Dismiss and Snooze buttons to activate")
	holdTimeHelp.Importance = widget.MediumImportance

	ringLabel := widget.NewLabel("Ring:")
	ringHelp := widget.NewLabel("Open a full-screen ring window when an enabled alarm is due while Rise Ease runs")
	ringHelp.Wrapping = fyne.TextWrapWord
	ringHelp.Importance = widget.MediumImportance

	form := container.New(layout.NewFormLayout(),
		container.NewVBox(snoozeLabel, snoozeHelp),
		container.NewVBox(sw.snoozeTimeSelect),

		container.NewVBox(holdTimeLabel, holdTimeHelp),
		container.NewVBox(sw.holdTimeSelect),

		container.NewVBox(ringLabel, ringHelp),
		container.NewVBox(sw.ringEnabledCheck),
	)

	content := container.NewVBox(
		widget.NewLabel("Alarm Settings"),
		widget.NewSeparator(),
		form,
	)

	return container.NewPadded(container.NewVScroll(content))
}
