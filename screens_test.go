package main

import (
	"math/rand/v2"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/borgmon/rise-ease/pkg/analytics"
	"github.com/borgmon/rise-ease/pkg/assistant"
	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/borgmon/rise-ease/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetingFor(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2024, 3, 4, hour, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, "Good Evening", greetingFor(at(4)))
	assert.Equal(t, "Good Morning", greetingFor(at(5)))
	assert.Equal(t, "Good Morning", greetingFor(at(11)))
	assert.Equal(t, "Good Afternoon", greetingFor(at(12)))
	assert.Equal(t, "Good Afternoon", greetingFor(at(17)))
	assert.Equal(t, "Good Evening", greetingFor(at(18)))
}

func TestScheduleSummary(t *testing.T) {
	schedule := models.DefaultWeekSchedule()
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	assert.Equal(t,
		"Mon: 8H and 30Min in bed\nNext bedtime: Mon 22:00 (in 10H and 0Min)\nNext alarm: Tue 06:30 (in 18H and 30Min)",
		scheduleSummary(schedule, models.Monday, true, true, now))

	assert.Equal(t, "Fri: 8H and 30Min in bed", scheduleSummary(schedule, models.Friday, false, false, now))

	broken := schedule.Set(models.Monday, models.TimeKindBed, "late")
	assert.Equal(t, "Mon: "+models.DisabledLabel, scheduleSummary(broken, models.Monday, false, false, now))
}

func TestTrayAlarmLines(t *testing.T) {
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	alarms := []models.Alarm{
		{ID: 1, Time: "9:00", Period: models.PeriodAM, Enabled: true},
		{ID: 2, Time: "1:30", Period: models.PeriodPM, Enabled: true},
		{ID: 3, Time: "6:00", Period: models.PeriodPM, Enabled: true},
	}

	assert.Equal(t, []string{
		"  9:00 am - 1H and 0Min",
		"  1:30 pm - 5H and 30Min",
	}, trayAlarmLines(alarms, now, 2))
	assert.Empty(t, trayAlarmLines(nil, now, trayAlarmLimit))
}

func TestPickedTime(t *testing.T) {
	hour, minute, err := pickedTime("12", "05", models.PeriodAM)
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 5}, [2]int{hour, minute})

	hour, minute, err = pickedTime("1", "30", models.PeriodPM)
	require.NoError(t, err)
	assert.Equal(t, [2]int{13, 30}, [2]int{hour, minute})

	_, _, err = pickedTime("", "30", models.PeriodPM)
	assert.Error(t, err)
	_, _, err = pickedTime("7", "30", "")
	assert.Error(t, err)
}

func TestPickerOptions(t *testing.T) {
	hours := hourOptions()
	require.Len(t, hours, 12)
	assert.Equal(t, "1", hours[0])
	assert.Equal(t, "12", hours[11])

	minutes := minuteOptions()
	require.Len(t, minutes, 60)
	assert.Equal(t, "00", minutes[0])
	assert.Equal(t, "59", minutes[59])

	assert.Equal(t, 12, displayHour(0))
	assert.Equal(t, 12, displayHour(12))
	assert.Equal(t, 1, displayHour(13))
	assert.Equal(t, 11, displayHour(23))
}

func TestSettingsOptions(t *testing.T) {
	assert.Equal(t, 0, parseSnoozeOption(snoozeDisabledOption))
	assert.Equal(t, 7, parseSnoozeOption("7 min"))
	assert.Equal(t, models.DefaultSnoozeTime, parseSnoozeOption(""))
	assert.Equal(t, 4, parseOption("4 sec", "%d sec", models.DefaultHoldTime))
	assert.Equal(t, models.DefaultHoldTime, parseOption("", "%d sec", models.DefaultHoldTime))

	assert.Len(t, snoozeOptions(), 16)
	assert.Len(t, holdTimeOptions(), 10)
}

func TestValidateCalendarURL(t *testing.T) {
	assert.NoError(t, validateCalendarURL("https://example.com/sleep.ics"))
	assert.NoError(t, validateCalendarURL("webcal://example.com/sleep.ics"))
	assert.EqualError(t, validateCalendarURL(""), "URL is required")
	assert.Error(t, validateCalendarURL("ftp://example.com/sleep.ics"))
	assert.Error(t, validateCalendarURL("https://"))
}

func TestAnalyticsScreenStartStop(t *testing.T) {
	test.NewTempApp(t)

	now := time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC)
	tracker := analytics.NewTrackerWith(func() time.Time { return now }, rand.New(rand.NewPCG(1, 2)))
	screen := NewAnalyticsScreen(tracker)

	assert.False(t, screen.startButton.Disabled())
	assert.True(t, screen.stopButton.Disabled())
	assert.Equal(t, "0.00 mins", screen.totalValue.Text)

	test.Tap(screen.startButton)
	assert.True(t, screen.startButton.Disabled())
	assert.False(t, screen.stopButton.Disabled())
	assert.Equal(t, "Tracking since 23:00", screen.status.Text)

	now = now.Add(7*time.Hour + 30*time.Minute)
	test.Tap(screen.stopButton)

	assert.False(t, screen.startButton.Disabled())
	assert.True(t, screen.stopButton.Disabled())
	assert.Equal(t, "450.00 mins", screen.totalValue.Text)
	assert.Equal(t, models.FormatMinutes(tracker.Metrics().SleepOnsetLatency), screen.onsetValue.Text)
	assert.Empty(t, screen.status.Text)
}

func TestAlarmScreenChanged(t *testing.T) {
	test.NewTempApp(t)

	alarmStore := store.NewAlarmStore(store.SeedAlarm())
	var notified []models.Alarm
	screen := NewAlarmScreen(test.NewWindow(nil), alarmStore, func(alarms []models.Alarm) {
		notified = alarms
	})
	require.Len(t, screen.list.Alarms(), 1)

	screen.changed(alarmStore.Insert("6:00", models.PeriodAM))
	assert.Len(t, notified, 2)

	// Without a callback the screen redraws itself
	screen.onChanged = nil
	screen.changed(alarmStore.Insert("7:00", models.PeriodAM))
	assert.Len(t, screen.list.Alarms(), 3)
}

func TestAssistantScreenSend(t *testing.T) {
	test.NewTempApp(t)

	conversation := assistant.NewConversation(&stubCompleter{reply: "Try a wind-down routine."}, 0)
	screen := NewAssistantScreen(conversation)
	require.Len(t, screen.bubbles.Objects, 1)

	screen.entry.SetText("I can't fall asleep")
	screen.send()
	assert.Empty(t, screen.entry.Text)

	assert.Eventually(t, func() bool {
		return len(conversation.Messages()) == 3 && !conversation.Busy()
	}, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		return len(screen.messages) == 3 && !screen.busy
	}, time.Second, 10*time.Millisecond)
}

func TestAlarmScreenDeleteAsksFirst(t *testing.T) {
	test.NewTempApp(t)

	window := test.NewWindow(nil)
	defer window.Close()

	alarmStore := store.NewAlarmStore(store.SeedAlarm())
	screen := NewAlarmScreen(window, alarmStore, nil)

	screen.confirmDelete(42)
	assert.Nil(t, window.Canvas().Overlays().Top(), "unknown ids open no dialog")

	screen.confirmDelete(1)
	assert.NotNil(t, window.Canvas().Overlays().Top())
	assert.Len(t, alarmStore.Alarms(), 1, "nothing is deleted before confirming")

	screen.deleteConfirmed(1, false)
	assert.Len(t, alarmStore.Alarms(), 1)
	assert.Len(t, screen.list.Alarms(), 1)

	screen.deleteConfirmed(1, true)
	assert.Empty(t, alarmStore.Alarms())
	assert.Empty(t, screen.list.Alarms())
}
