package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeekSchedule(t *testing.T) {
	s := DefaultWeekSchedule()

	require.Len(t, s, 7)
	assert.Equal(t, DayTimes{Bed: "22:00", Alarm: "06:30"}, s[Monday])
	assert.Equal(t, DayTimes{Bed: "23:00", Alarm: "07:30"}, s[Friday])
	assert.Equal(t, DayTimes{Bed: "23:30", Alarm: "08:30"}, s[Saturday])
	assert.Equal(t, DayTimes{Bed: "22:30", Alarm: "07:00"}, s[Sunday])
}

func TestWeekScheduleSetReturnsCopy(t *testing.T) {
	original := DefaultWeekSchedule()

	updated := original.Set(Tuesday, TimeKindAlarm, "07:00")

	assert.Equal(t, "07:00", updated.Get(Tuesday, TimeKindAlarm))
	assert.Equal(t, "22:00", updated.Get(Tuesday, TimeKindBed))
	assert.Equal(t, "06:30", original.Get(Tuesday, TimeKindAlarm), "original must not change")
	assert.Equal(t, original[Monday], updated[Monday])
}

func TestSleepWindow(t *testing.T) {
	s := DefaultWeekSchedule()

	window, err := s.SleepWindow(Monday)
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour+30*time.Minute, window)

	s = s.Set(Monday, TimeKindBed, "00:00")
	window, err = s.SleepWindow(Monday)
	require.NoError(t, err)
	assert.Equal(t, 6*time.Hour+30*time.Minute, window)

	s = s.Set(Monday, TimeKindBed, "25:00")
	_, err = s.SleepWindow(Monday)
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestDayFromWeekday(t *testing.T) {
	for _, day := range DaysOfWeek {
		assert.Equal(t, day, DayFromWeekday(day.Weekday()))
	}
	assert.Equal(t, Sunday, DayFromWeekday(time.Sunday))
	assert.Equal(t, Monday, DayFromWeekday(time.Monday))
}
