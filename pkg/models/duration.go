package models

import (
	"fmt"
	"time"
)

// NextFire returns the next instant an alarm at (clock, period) rings after now.
// If today's occurrence is not strictly in the future it rolls to the same
// wall-clock time on the next calendar day.
func NextFire(clock string, period Period, now time.Time) (time.Time, error) {
	hour, minute, err := ParseClock(clock, period)
	if err != nil {
		return time.Time{}, err
	}

	fire := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !fire.After(now) {
		fire = fire.AddDate(0, 0, 1)
	}

	return fire, nil
}

// DurationUntil returns the time remaining until the alarm's next occurrence
func DurationUntil(clock string, period Period, now time.Time) (time.Duration, error) {
	fire, err := NextFire(clock, period, now)
	if err != nil {
		return 0, err
	}
	return fire.Sub(now), nil
}

// DurationLabel renders the time until the next occurrence as "{H}H and {M}Min"
func DurationLabel(clock string, period Period, now time.Time) (string, error) {
	d, err := DurationUntil(clock, period, now)
	if err != nil {
		return "", err
	}
	return FormatDuration(d), nil
}

// FormatDuration floors d to whole milliseconds, then to whole hours and the
// remaining whole minutes
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	hours := ms / int64(time.Hour/time.Millisecond)
	minutes := (ms / int64(time.Minute/time.Millisecond)) % 60
	return fmt.Sprintf("%dH and %dMin", hours, minutes)
}

// RoundToMinute rounds a time down to the nearest minute
func RoundToMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}
