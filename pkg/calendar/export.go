package calendar

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const (
	// ProductID identifies calendars written by the app
	ProductID = "-//RiseEase//Sleep Schedule//EN"

	// EventSummary is the title of every exported bedtime event
	EventSummary = "Bedtime"
)

// ErrEmptySchedule is returned when a schedule has no usable day
var ErrEmptySchedule = errors.New("schedule has no days")

// ExportSchedule writes the schedule as an iCalendar with one weekly recurring
// event per day, running from bedtime to the alarm. The first instance of each
// event falls in the week starting at now's date, in now's location.
func ExportSchedule(w io.Writer, schedule models.WeekSchedule, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, day := range models.DaysOfWeek {
		times, ok := schedule[day]
		if !ok {
			continue
		}

		start, end, err := sleepBlockOn(day, times, now)
		if err != nil {
			return fmt.Errorf("invalid %s schedule: %w", day, err)
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, uuid.NewString())
		event.Props.SetText(ical.PropSummary, EventSummary)
		event.Props.SetText(ical.PropDescription, fmt.Sprintf("Wake up at %s", times.Alarm))
		event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
		event.Props.SetDateTime(ical.PropDateTimeStart, start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, end)

		// Set the raw value; SetText would escape the ';' separators
		option := weeklyOption(start.Weekday())
		rule := ical.NewProp(ical.PropRecurrenceRule)
		rule.Value = option.RRuleString()
		event.Props.Set(rule)

		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		return ErrEmptySchedule
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

// sleepBlockOn returns the first bedtime and alarm instants for day on or
// after the date of from. An alarm not after bedtime belongs to the next morning.
func sleepBlockOn(day models.DayOfWeek, times models.DayTimes, from time.Time) (time.Time, time.Time, error) {
	bed, err := models.ParseClock24(times.Bed)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	wake, err := models.ParseClock24(times.Alarm)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	offset := (int(day.Weekday()) - int(from.Weekday()) + 7) % 7
	year, month, date := from.Date()
	loc := from.Location()

	start := time.Date(year, month, date+offset, int(bed.Hours()), int(bed.Minutes())%60, 0, 0, loc)
	end := time.Date(year, month, date+offset, int(wake.Hours()), int(wake.Minutes())%60, 0, 0, loc)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	return start, end, nil
}
