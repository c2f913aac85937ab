package components

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/rise-ease/pkg/models"
)

// AlarmListConfig configures the alarm list
type AlarmListConfig struct {
	Now      func() time.Time // Clock used for the duration labels
	OnAdd    func()           // Called when the add button is pressed
	OnToggle func(id int)     // Called when an alarm's switch is flipped
	OnDelete func(id int)     // Called when an alarm's delete button is pressed
}

// AlarmList shows alarms in the order given, each with its live duration,
// an enable switch and a delete button
type AlarmList struct {
	list   *widget.List
	data   []models.Alarm
	config AlarmListConfig
}

// NewAlarmList creates the alarm list and its add control
func NewAlarmList(alarms []models.Alarm, config AlarmListConfig) (*AlarmList, *fyne.Container) {
	if config.Now == nil {
		config.Now = time.Now
	}

	al := &AlarmList{
		data:   alarms,
		config: config,
	}

	al.list = widget.NewList(
		func() int {
			return len(al.data)
		},
		func() fyne.CanvasObject {
			return newAlarmRow()
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i < len(al.data) {
				al.bindRow(o.(*alarmRow), al.data[i])
			}
		})

	addButton := widget.NewButtonWithIcon("Add Alarm", theme.ContentAddIcon(), func() {
		if al.config.OnAdd != nil {
			al.config.OnAdd()
		}
	})
	addButton.Importance = widget.HighImportance

	listContainer := container.NewBorder(
		nil,
		container.NewPadded(addButton),
		nil,
		nil,
		al.list,
	)

	return al, listContainer
}

func (al *AlarmList) bindRow(row *alarmRow, alarm models.Alarm) {
	id := alarm.ID

	row.name.SetText(alarm.Name)
	row.clock.SetText(alarm.String())
	row.duration.SetText(alarm.Label(al.config.Now()))

	// Detach the handler so restoring the state does not count as a flip
	row.toggle.OnChanged = nil
	row.toggle.SetChecked(alarm.Enabled)
	row.toggle.OnChanged = func(bool) {
		if al.config.OnToggle != nil {
			al.config.OnToggle(id)
		}
	}

	row.remove.OnTapped = func() {
		if al.config.OnDelete != nil {
			al.config.OnDelete(id)
		}
	}
}

// SetAlarms replaces the displayed alarms
func (al *AlarmList) SetAlarms(alarms []models.Alarm) {
	al.data = alarms
	al.list.Refresh()
}

// Alarms returns the displayed alarms
func (al *AlarmList) Alarms() []models.Alarm {
	return al.data
}

// Refresh redraws the rows so duration labels follow the clock
func (al *AlarmList) Refresh() {
	al.list.Refresh()
}

type alarmRow struct {
	widget.BaseWidget

	name     *widget.Label
	clock    *widget.Label
	duration *widget.Label
	toggle   *widget.Check
	remove   *widget.Button
}

func newAlarmRow() *alarmRow {
	r := &alarmRow{
		name:     widget.NewLabel("Alarm"),
		clock:    widget.NewLabelWithStyle("12:00 am", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		duration: widget.NewLabel(models.DisabledLabel),
		toggle:   widget.NewCheck("", nil),
		remove:   widget.NewButtonWithIcon("", theme.DeleteIcon(), nil),
	}
	r.name.Importance = widget.LowImportance
	r.remove.Importance = widget.DangerImportance
	r.ExtendBaseWidget(r)
	return r
}

func (r *alarmRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(
		nil,
		nil,
		container.NewVBox(r.clock, r.name),
		container.NewHBox(r.duration, r.toggle, r.remove),
	))
}
