package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/borgmon/rise-ease/pkg/store"
	"github.com/borgmon/rise-ease/pkg/ui/components"
)

// AlarmScreen lists alarms and edits them through the alarm store
type AlarmScreen struct {
	window    fyne.Window
	store     *store.AlarmStore
	onChanged func([]models.Alarm)

	list    *components.AlarmList
	content fyne.CanvasObject
}

func NewAlarmScreen(window fyne.Window, alarmStore *store.AlarmStore, onChanged func([]models.Alarm)) *AlarmScreen {
	as := &AlarmScreen{
		window:    window,
		store:     alarmStore,
		onChanged: onChanged,
	}

	as.list, as.content = components.NewAlarmList(alarmStore.Alarms(), components.AlarmListConfig{
		OnAdd: as.showAddAlarmDialog,
		OnToggle: func(id int) {
			as.changed(as.store.Toggle(id))
		},
		OnDelete: as.confirmDelete,
	})

	return as
}

func (as *AlarmScreen) Content() fyne.CanvasObject {
	return as.content
}

func (as *AlarmScreen) SetAlarms(alarms []models.Alarm) {
	as.list.SetAlarms(alarms)
}

func (as *AlarmScreen) Refresh() {
	as.list.Refresh()
}

func (as *AlarmScreen) changed(alarms []models.Alarm) {
	if as.onChanged != nil {
		as.onChanged(alarms)
		return
	}
	as.SetAlarms(alarms)
}

// confirmDelete asks before removing an alarm
func (as *AlarmScreen) confirmDelete(id int) {
	alarm, ok := as.store.Get(id)
	if !ok {
		return
	}

	dialog.ShowConfirm("Delete Alarm",
		fmt.Sprintf("Are you sure you want to delete the %s alarm?", alarm),
		func(confirmed bool) {
			as.deleteConfirmed(id, confirmed)
		}, as.window)
}

func (as *AlarmScreen) deleteConfirmed(id int, confirmed bool) {
	if !confirmed {
		return
	}
	log.Printf("Deleted alarm %d", id)
	as.changed(as.store.Delete(id))
}

func (as *AlarmScreen) showAddAlarmDialog() {
	now := time.Now()
	defaultClock, defaultPeriod := models.ClockFromTime(now)
	defaultHour, defaultMinute, _ := models.ParseClock(defaultClock, defaultPeriod)

	hourSelect := widget.NewSelect(hourOptions(), nil)
	hourSelect.SetSelected(strconv.Itoa(displayHour(defaultHour)))
	minuteSelect := widget.NewSelect(minuteOptions(), nil)
	minuteSelect.SetSelected(fmt.Sprintf("%02d", defaultMinute))
	periodRadio := widget.NewRadioGroup([]string{string(models.PeriodAM), string(models.PeriodPM)}, nil)
	periodRadio.Horizontal = true
	periodRadio.SetSelected(string(defaultPeriod))

	items := []*widget.FormItem{
		widget.NewFormItem("Hour", hourSelect),
		widget.NewFormItem("Minute", minuteSelect),
		widget.NewFormItem("", periodRadio),
	}

	dialog.ShowForm("Add Alarm", "Create", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		hour, minute, err := pickedTime(hourSelect.Selected, minuteSelect.Selected, models.Period(periodRadio.Selected))
		if err != nil {
			dialog.ShowError(err, as.window)
			return
		}

		clock, period := models.ClockFromTime(time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()))
		alarms := as.store.Insert(clock, period)
		log.Printf("Added alarm %s %s", clock, period)
		as.changed(alarms)
	}, as.window)
}

func hourOptions() []string {
	options := make([]string, 0, 12)
	for h := 1; h <= 12; h++ {
		options = append(options, strconv.Itoa(h))
	}
	return options
}

func minuteOptions() []string {
	options := make([]string, 0, 60)
	for m := 0; m < 60; m++ {
		options = append(options, fmt.Sprintf("%02d", m))
	}
	return options
}

// displayHour maps a 0-23 hour to the 1-12 face of a 12-hour clock
func displayHour(hour int) int {
	hour %= 12
	if hour == 0 {
		return 12
	}
	return hour
}

// pickedTime turns the picker fields into a 24-hour time
func pickedTime(hourText, minuteText string, period models.Period) (hour, minute int, err error) {
	if hourText == "" || minuteText == "" || (period != models.PeriodAM && period != models.PeriodPM) {
		return 0, 0, fmt.Errorf("please pick an hour, a minute and AM or PM")
	}

	hour, minute, err = models.ParseClock(hourText+":"+minuteText, period)
	if err != nil {
		return 0, 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%s:%s %s is not a time of day", hourText, minuteText, period)
	}
	return hour, minute, nil
}
