package models

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name       string
		clock      string
		period     Period
		wantHour   int
		wantMinute int
	}{
		{name: "midnight", clock: "12:00", period: PeriodAM, wantHour: 0, wantMinute: 0},
		{name: "early morning", clock: "6:30", period: PeriodAM, wantHour: 6, wantMinute: 30},
		{name: "late morning", clock: "11:20", period: PeriodAM, wantHour: 11, wantMinute: 20},
		{name: "noon", clock: "12:15", period: PeriodPM, wantHour: 12, wantMinute: 15},
		{name: "afternoon", clock: "1:00", period: PeriodPM, wantHour: 13, wantMinute: 0},
		{name: "last minute", clock: "11:59", period: PeriodPM, wantHour: 23, wantMinute: 59},
		{name: "leading zero", clock: "09:05", period: PeriodAM, wantHour: 9, wantMinute: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := ParseClock(tt.clock, tt.period)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMinute, minute)
		})
	}
}

func TestParseClockCoversEveryMinuteOfDay(t *testing.T) {
	seen := make(map[[2]int]string)

	for _, period := range []Period{PeriodAM, PeriodPM} {
		for hour := 1; hour <= 12; hour++ {
			for minute := 0; minute < 60; minute++ {
				clock := fmt.Sprintf("%d:%02d", hour, minute)
				h, m, err := ParseClock(clock, period)
				require.NoError(t, err)
				require.True(t, h >= 0 && h <= 23, "hour out of range for %s %s", clock, period)
				require.True(t, m >= 0 && m <= 59, "minute out of range for %s %s", clock, period)

				key := [2]int{h, m}
				prev, dup := seen[key]
				require.False(t, dup, "%s %s collides with %s", clock, period, prev)
				seen[key] = clock + " " + string(period)
			}
		}
	}

	assert.Len(t, seen, 24*60)
}

func TestParseClockMalformed(t *testing.T) {
	for _, input := range []string{"", "630", "ab:cd", "6:", ":30"} {
		t.Run(input, func(t *testing.T) {
			_, _, err := ParseClock(input, PeriodAM)
			assert.ErrorIs(t, err, ErrMalformedTime)
		})
	}
}

func TestParseClockOutOfRangePassesThrough(t *testing.T) {
	hour, minute, err := ParseClock("13:75", PeriodPM)
	require.NoError(t, err)
	assert.Equal(t, 25, hour)
	assert.Equal(t, 75, minute)
}

func TestClockFromTime(t *testing.T) {
	tests := []struct {
		hour, minute int
		wantClock    string
		wantPeriod   Period
	}{
		{0, 5, "12:05", PeriodAM},
		{6, 30, "6:30", PeriodAM},
		{12, 0, "12:00", PeriodPM},
		{13, 45, "1:45", PeriodPM},
		{23, 59, "11:59", PeriodPM},
	}

	for _, tt := range tests {
		t.Run(tt.wantClock+string(tt.wantPeriod), func(t *testing.T) {
			clock, period := ClockFromTime(time.Date(2024, 3, 4, tt.hour, tt.minute, 0, 0, time.UTC))
			assert.Equal(t, tt.wantClock, clock)
			assert.Equal(t, tt.wantPeriod, period)
		})
	}
}

func TestCompareAlarms(t *testing.T) {
	alarm := func(clock string, period Period) Alarm {
		return Alarm{Time: clock, Period: period}
	}

	t.Run("am before pm regardless of hour", func(t *testing.T) {
		assert.Equal(t, -1, CompareAlarms(alarm("11:20", PeriodAM), alarm("1:00", PeriodPM)))
		assert.Equal(t, 1, CompareAlarms(alarm("1:00", PeriodPM), alarm("11:20", PeriodAM)))
	})

	t.Run("hour then minute", func(t *testing.T) {
		assert.Equal(t, -1, CompareAlarms(alarm("6:30", PeriodAM), alarm("11:20", PeriodAM)))
		assert.Equal(t, -1, CompareAlarms(alarm("6:05", PeriodAM), alarm("6:30", PeriodAM)))
		assert.Equal(t, 0, CompareAlarms(alarm("6:30", PeriodAM), alarm("6:30", PeriodAM)))
	})

	t.Run("raw twelve sorts last within its period", func(t *testing.T) {
		assert.Equal(t, 1, CompareAlarms(alarm("12:05", PeriodPM), alarm("11:40", PeriodPM)))
		assert.Equal(t, 1, CompareAlarms(alarm("12:05", PeriodAM), alarm("1:00", PeriodAM)))
	})
}

func TestCompareAlarmsIsTotalOrder(t *testing.T) {
	var alarms []Alarm
	for _, period := range []Period{PeriodPM, PeriodAM} {
		for _, clock := range []string{"12:00", "1:15", "6:30", "6:05", "11:59"} {
			alarms = append(alarms, Alarm{Time: clock, Period: period})
		}
	}

	for _, a := range alarms {
		assert.Equal(t, 0, CompareAlarms(a, a), "reflexive compare must be 0 for %s", a)
		for _, b := range alarms {
			assert.Equal(t, -CompareAlarms(b, a), CompareAlarms(a, b), "antisymmetry for %s / %s", a, b)
			for _, c := range alarms {
				if CompareAlarms(a, b) <= 0 && CompareAlarms(b, c) <= 0 {
					assert.LessOrEqual(t, CompareAlarms(a, c), 0, "transitivity for %s, %s, %s", a, b, c)
				}
			}
		}
	}
}

func TestCompareAlarmsStableSort(t *testing.T) {
	alarms := []Alarm{
		{ID: 1, Time: "7:00", Period: PeriodAM},
		{ID: 2, Time: "6:00", Period: PeriodAM},
		{ID: 3, Time: "7:00", Period: PeriodAM},
		{ID: 4, Time: "7:00", Period: PeriodAM},
	}

	slices.SortStableFunc(alarms, CompareAlarms)

	ids := make([]int, 0, len(alarms))
	for _, a := range alarms {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int{2, 1, 3, 4}, ids)
}

func TestAlarmLabel(t *testing.T) {
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	enabled := Alarm{Time: "9:00", Period: PeriodAM, Enabled: true}
	assert.Equal(t, "1H and 0Min", enabled.Label(now))

	disabled := enabled
	disabled.Enabled = false
	assert.Equal(t, DisabledLabel, disabled.Label(now))

	broken := Alarm{Time: "nine", Period: PeriodAM, Enabled: true}
	assert.Equal(t, DisabledLabel, broken.Label(now))
}
