package models

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period disambiguates a 12-hour clock time
type Period string

const (
	PeriodAM Period = "am"
	PeriodPM Period = "pm"
)

// DisabledLabel is shown instead of a live duration for disabled alarms
const DisabledLabel = "--"

// DefaultDurationLabel is the placeholder given to freshly inserted alarms
const DefaultDurationLabel = "0H and 0Min"

// ErrMalformedTime is returned when a time string is not "<hour>:<minute>"
var ErrMalformedTime = errors.New("malformed time")

// Alarm represents a user-configured alarm on the alarm screen
type Alarm struct {
	ID            int    // Assigned by the store at insertion
	Name          string // Display label, "Alarm N" by default
	Time          string // 12-hour "H:MM", no leading zero on the hour
	Period        Period // am or pm
	DurationLabel string // Placeholder or computed "{H}H and {M}Min"
	Enabled       bool   // Only enabled alarms show a live duration
}

// String renders the alarm the way the list shows it, e.g. "6:30 am"
func (a Alarm) String() string {
	return a.Time + " " + string(a.Period)
}

// Label returns what the alarm card shows under the time. It is derived on
// every call and never stored back on the alarm.
func (a Alarm) Label(now time.Time) string {
	if !a.Enabled {
		return DisabledLabel
	}
	label, err := DurationLabel(a.Time, a.Period, now)
	if err != nil {
		return DisabledLabel
	}
	return label
}

// ParseClock converts a 12-hour "H:MM" string and period to a 24-hour hour and minute.
// Only the shape of the string is checked; out-of-range values pass through.
func ParseClock(clock string, period Period) (hour, minute int, err error) {
	hour, minute, err = splitClock(clock)
	if err != nil {
		return 0, 0, err
	}

	if period == PeriodPM && hour != 12 {
		hour += 12
	}
	if period == PeriodAM && hour == 12 {
		hour = 0
	}

	return hour, minute, nil
}

// splitClock splits "H:MM" into its raw numeric parts without any normalization
func splitClock(clock string) (hour, minute int, err error) {
	hourPart, minutePart, ok := strings.Cut(strings.TrimSpace(clock), ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, clock)
	}

	hour, err = strconv.Atoi(hourPart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, clock)
	}
	minute, err = strconv.Atoi(minutePart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, clock)
	}

	return hour, minute, nil
}

// ClockFromTime converts a picked wall-clock time into the "H:MM" form and period
func ClockFromTime(t time.Time) (string, Period) {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}

	period := PeriodAM
	if t.Hour() >= 12 {
		period = PeriodPM
	}

	return fmt.Sprintf("%d:%02d", hour, t.Minute()), period
}

// CompareAlarms orders am before pm, then by the hour as written in the
// 12-hour Time field, then by minute. The hour is deliberately not normalized,
// so "12:05 pm" sorts after "11:40 pm".
func CompareAlarms(a, b Alarm) int {
	if a.Period != b.Period {
		if a.Period == PeriodAM {
			return -1
		}
		return 1
	}

	aHour, aMinute, _ := splitClock(a.Time)
	bHour, bMinute, _ := splitClock(b.Time)

	if aHour != bHour {
		return cmp.Compare(aHour, bHour)
	}
	return cmp.Compare(aMinute, bMinute)
}
