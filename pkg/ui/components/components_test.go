package components

import (
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldButtonCompletesAfterHold(t *testing.T) {
	test.NewTempApp(t)

	var completed atomic.Int32
	button := NewHoldButton("Dismiss", 100*time.Millisecond, func() {
		completed.Add(1)
	})

	button.MouseDown(nil)
	assert.True(t, button.Holding())

	assert.Eventually(t, func() bool { return completed.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.False(t, button.Holding())

	// Releasing after completion does nothing more
	button.MouseUp(nil)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), completed.Load())
}

func TestHoldButtonEarlyReleaseCancels(t *testing.T) {
	test.NewTempApp(t)

	var completed atomic.Int32
	button := NewHoldButton("Snooze", 300*time.Millisecond, func() {
		completed.Add(1)
	})

	button.MouseDown(nil)
	time.Sleep(60 * time.Millisecond)
	button.MouseUp(nil)

	assert.False(t, button.Holding())
	time.Sleep(400 * time.Millisecond)
	assert.Zero(t, completed.Load())
	assert.Zero(t, button.progress)
}

func TestHoldButtonMouseOutCancels(t *testing.T) {
	test.NewTempApp(t)

	var completed atomic.Int32
	button := NewHoldButton("Dismiss", 200*time.Millisecond, func() {
		completed.Add(1)
	})

	button.TouchDown(nil)
	button.MouseOut()

	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, completed.Load())
}

func TestAlarmListRows(t *testing.T) {
	test.NewTempApp(t)

	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	alarms := []models.Alarm{
		{ID: 2, Name: "Alarm 2", Time: "9:00", Period: models.PeriodAM, Enabled: true},
		{ID: 1, Name: "Alarm 1", Time: "11:20", Period: models.PeriodAM},
	}

	var toggled, deleted []int
	al, _ := NewAlarmList(alarms, AlarmListConfig{
		Now:      func() time.Time { return now },
		OnToggle: func(id int) { toggled = append(toggled, id) },
		OnDelete: func(id int) { deleted = append(deleted, id) },
	})

	require.Equal(t, 2, al.list.Length())

	row := al.list.CreateItem().(*alarmRow)
	al.list.UpdateItem(0, row)

	assert.Equal(t, "Alarm 2", row.name.Text)
	assert.Equal(t, "9:00 am", row.clock.Text)
	assert.Equal(t, "1H and 0Min", row.duration.Text)
	assert.True(t, row.toggle.Checked)
	assert.Empty(t, toggled, "binding a row must not report a toggle")

	test.Tap(row.toggle)
	test.Tap(row.remove)
	assert.Equal(t, []int{2}, toggled)
	assert.Equal(t, []int{2}, deleted)

	al.list.UpdateItem(1, row)
	assert.Equal(t, models.DisabledLabel, row.duration.Text)
	assert.False(t, row.toggle.Checked)

	al.SetAlarms(alarms[:1])
	assert.Equal(t, 1, al.list.Length())
}
