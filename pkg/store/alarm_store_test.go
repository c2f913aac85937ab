package store

import (
	"testing"
	"time"

	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(alarms []models.Alarm) []string {
	result := make([]string, 0, len(alarms))
	for _, a := range alarms {
		result = append(result, a.String())
	}
	return result
}

func TestInsertKeepsOrder(t *testing.T) {
	t.Run("earlier am alarm goes first", func(t *testing.T) {
		as := NewAlarmStore(models.Alarm{ID: 1, Name: "Alarm 1", Time: "11:20", Period: models.PeriodAM})

		alarms := as.Insert("6:30", models.PeriodAM)

		assert.Equal(t, []string{"6:30 am", "11:20 am"}, order(alarms))
	})

	t.Run("pm after am regardless of hour", func(t *testing.T) {
		as := NewAlarmStore(models.Alarm{ID: 1, Name: "Alarm 1", Time: "11:20", Period: models.PeriodAM})

		alarms := as.Insert("1:00", models.PeriodPM)

		assert.Equal(t, []string{"11:20 am", "1:00 pm"}, order(alarms))
	})

	t.Run("twelve pm sorts after other pm hours", func(t *testing.T) {
		as := NewAlarmStore()
		as.Insert("12:10", models.PeriodPM)
		as.Insert("3:00", models.PeriodPM)

		alarms := as.Insert("11:45", models.PeriodPM)

		assert.Equal(t, []string{"3:00 pm", "11:45 pm", "12:10 pm"}, order(alarms))
	})
}

func TestInsertDefaults(t *testing.T) {
	as := NewAlarmStore(SeedAlarm())

	alarms := as.Insert("6:30", models.PeriodAM)
	require.Len(t, alarms, 2)

	inserted := alarms[0]
	assert.Equal(t, 2, inserted.ID)
	assert.Equal(t, "Alarm 2", inserted.Name)
	assert.Equal(t, models.DefaultDurationLabel, inserted.DurationLabel)
	assert.False(t, inserted.Enabled)
}

func TestInsertAllowsDuplicatesAndStaysStable(t *testing.T) {
	as := NewAlarmStore()
	as.Insert("7:00", models.PeriodAM)
	as.Insert("7:00", models.PeriodAM)
	alarms := as.Insert("7:00", models.PeriodAM)

	require.Len(t, alarms, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{alarms[0].ID, alarms[1].ID, alarms[2].ID})
}

func TestIDsAreNotReusedAfterDelete(t *testing.T) {
	as := NewAlarmStore(SeedAlarm())
	as.Insert("6:30", models.PeriodAM)
	as.Delete(1)

	alarms := as.Insert("8:00", models.PeriodAM)

	ids := map[int]bool{}
	for _, a := range alarms {
		assert.False(t, ids[a.ID], "duplicate id %d", a.ID)
		ids[a.ID] = true
	}
	assert.True(t, ids[3])
}

func TestToggle(t *testing.T) {
	as := NewAlarmStore(SeedAlarm())
	as.Insert("6:30", models.PeriodAM)
	before := as.Insert("2:00", models.PeriodPM)

	after := as.Toggle(1)

	require.Len(t, after, len(before))
	assert.Equal(t, order(before), order(after))
	for i := range before {
		if before[i].ID == 1 {
			assert.Equal(t, !before[i].Enabled, after[i].Enabled)
			flipped := after[i]
			flipped.Enabled = before[i].Enabled
			assert.Equal(t, before[i], flipped, "only Enabled may change")
			continue
		}
		assert.Equal(t, before[i], after[i])
	}

	again := as.Toggle(1)
	assert.Equal(t, before, again)
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	as := NewAlarmStore(SeedAlarm())
	before := as.Alarms()

	assert.Equal(t, before, as.Toggle(99))
}

func TestDelete(t *testing.T) {
	as := NewAlarmStore(SeedAlarm())
	as.Insert("6:30", models.PeriodAM)
	as.Insert("6:30", models.PeriodAM)

	alarms := as.Delete(2)

	require.Len(t, alarms, 2)
	for _, a := range alarms {
		assert.NotEqual(t, 2, a.ID)
	}
	assert.Equal(t, []int{3, 1}, []int{alarms[0].ID, alarms[1].ID}, "remaining ids are not renumbered")

	assert.Equal(t, alarms, as.Delete(42))
}

func TestMutationsReturnCopies(t *testing.T) {
	as := NewAlarmStore(SeedAlarm())

	alarms := as.Alarms()
	alarms[0].Name = "changed"

	got, ok := as.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Alarm 1", got.Name)
}

func TestDue(t *testing.T) {
	as := NewAlarmStore()
	as.Insert("6:30", models.PeriodAM)
	as.Insert("6:30", models.PeriodPM)
	as.Toggle(1)

	now := time.Date(2024, 3, 4, 6, 30, 20, 0, time.UTC)

	due := as.Due(now)
	require.Len(t, due, 1)
	assert.Equal(t, 1, due[0].ID)

	assert.Empty(t, as.Due(now.Add(10*time.Second)), "an alarm rings once per minute")
	assert.Empty(t, as.Due(time.Date(2024, 3, 4, 18, 30, 0, 0, time.UTC)), "disabled alarms never ring")
}

func TestSnoozeRingsAgain(t *testing.T) {
	as := NewAlarmStore()
	as.Insert("6:30", models.PeriodAM)
	as.Toggle(1)

	ring := time.Date(2024, 3, 4, 6, 30, 0, 0, time.UTC)
	require.Len(t, as.Due(ring), 1)

	as.Snooze(1, ring.Add(5*time.Minute))
	_, snoozed := as.SnoozedUntil(1)
	assert.True(t, snoozed)

	assert.Empty(t, as.Due(ring.Add(4*time.Minute)))
	due := as.Due(ring.Add(5 * time.Minute))
	require.Len(t, due, 1)

	_, snoozed = as.SnoozedUntil(1)
	assert.False(t, snoozed)
}

func TestDismissAndDisableClearSnooze(t *testing.T) {
	as := NewAlarmStore()
	as.Insert("6:30", models.PeriodAM)
	as.Toggle(1)

	as.Snooze(1, time.Now().Add(time.Minute))
	as.Dismiss(1)
	_, snoozed := as.SnoozedUntil(1)
	assert.False(t, snoozed)

	as.Snooze(1, time.Now().Add(time.Minute))
	as.Toggle(1)
	_, snoozed = as.SnoozedUntil(1)
	assert.False(t, snoozed)

	as.Snooze(42, time.Now())
	_, snoozed = as.SnoozedUntil(42)
	assert.False(t, snoozed, "unknown ids cannot be snoozed")
}
