package models

import (
	"fmt"
	"time"
)

// DayOfWeek is the short day name used by the home screen calendar strip
type DayOfWeek string

const (
	Monday    DayOfWeek = "Mon"
	Tuesday   DayOfWeek = "Tue"
	Wednesday DayOfWeek = "Wed"
	Thursday  DayOfWeek = "Thu"
	Friday    DayOfWeek = "Fri"
	Saturday  DayOfWeek = "Sat"
	Sunday    DayOfWeek = "Sun"
)

// DaysOfWeek lists the calendar strip in display order
var DaysOfWeek = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Weekday maps the short name to time.Weekday
func (d DayOfWeek) Weekday() time.Weekday {
	switch d {
	case Monday:
		return time.Monday
	case Tuesday:
		return time.Tuesday
	case Wednesday:
		return time.Wednesday
	case Thursday:
		return time.Thursday
	case Friday:
		return time.Friday
	case Saturday:
		return time.Saturday
	default:
		return time.Sunday
	}
}

// DayFromWeekday maps time.Weekday to the short name
func DayFromWeekday(w time.Weekday) DayOfWeek {
	return DaysOfWeek[(int(w)+6)%7]
}

// TimeKind selects the bed or alarm slot of a day
type TimeKind string

const (
	TimeKindBed   TimeKind = "bed"
	TimeKindAlarm TimeKind = "alarm"
)

// DayTimes holds the 24-hour "HH:MM" bed and alarm times of one day
type DayTimes struct {
	Bed   string `json:"bed"`
	Alarm string `json:"alarm"`
}

// PickerTimes are the choices offered when editing a bed or alarm time
var PickerTimes = []string{
	"21:00", "22:00", "22:30", "23:00", "23:30", "00:00",
	"06:00", "06:30", "07:00", "07:30", "08:00", "08:30",
}

// WeekSchedule holds bed and alarm times per day
type WeekSchedule map[DayOfWeek]DayTimes

// DefaultWeekSchedule returns the schedule the home screen starts with
func DefaultWeekSchedule() WeekSchedule {
	return WeekSchedule{
		Monday:    {Bed: "22:00", Alarm: "06:30"},
		Tuesday:   {Bed: "22:00", Alarm: "06:30"},
		Wednesday: {Bed: "22:00", Alarm: "06:30"},
		Thursday:  {Bed: "22:00", Alarm: "06:30"},
		Friday:    {Bed: "23:00", Alarm: "07:30"},
		Saturday:  {Bed: "23:30", Alarm: "08:30"},
		Sunday:    {Bed: "22:30", Alarm: "07:00"},
	}
}

// Set returns a copy of the schedule with one slot replaced
func (s WeekSchedule) Set(day DayOfWeek, kind TimeKind, value string) WeekSchedule {
	next := make(WeekSchedule, len(s))
	for d, times := range s {
		next[d] = times
	}

	times := next[day]
	switch kind {
	case TimeKindBed:
		times.Bed = value
	case TimeKindAlarm:
		times.Alarm = value
	}
	next[day] = times

	return next
}

// Get returns one slot of a day
func (s WeekSchedule) Get(day DayOfWeek, kind TimeKind) string {
	if kind == TimeKindBed {
		return s[day].Bed
	}
	return s[day].Alarm
}

// SleepWindow returns the planned time in bed for a day, wrapping past midnight
func (s WeekSchedule) SleepWindow(day DayOfWeek) (time.Duration, error) {
	times := s[day]

	bed, err := ParseClock24(times.Bed)
	if err != nil {
		return 0, err
	}
	wake, err := ParseClock24(times.Alarm)
	if err != nil {
		return 0, err
	}

	window := wake - bed
	if window <= 0 {
		window += 24 * time.Hour
	}
	return window, nil
}

// ParseClock24 parses a 24-hour "HH:MM" string into an offset from midnight
func ParseClock24(clock string) (time.Duration, error) {
	hour, minute, err := splitClock(clock)
	if err != nil {
		return 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q out of range", ErrMalformedTime, clock)
	}
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute, nil
}
