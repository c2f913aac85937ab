package calendar

import (
	"fmt"
	"time"

	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/teambition/rrule-go"
)

var ruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// weeklyOption is the recurrence used for every schedule event
func weeklyOption(weekday time.Weekday) rrule.ROption {
	return rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{ruleWeekdays[weekday]},
	}
}

// NextOccurrence expands each day of the schedule as a weekly rule and returns
// the earliest bed or alarm instant strictly after now, together with the day
// it was scheduled for. Wall-clock times are kept across DST changes.
func NextOccurrence(schedule models.WeekSchedule, kind models.TimeKind, now time.Time) (time.Time, models.DayOfWeek, error) {
	var (
		next    time.Time
		nextDay models.DayOfWeek
	)

	// Anchor a week back so the current week's instants are still generated
	anchor := now.AddDate(0, 0, -7)

	for _, day := range models.DaysOfWeek {
		times, ok := schedule[day]
		if !ok {
			continue
		}

		start, end, err := sleepBlockOn(day, times, anchor)
		if err != nil {
			return time.Time{}, "", fmt.Errorf("invalid %s schedule: %w", day, err)
		}

		dtstart := start
		if kind == models.TimeKindAlarm {
			dtstart = end
		}

		option := weeklyOption(dtstart.Weekday())
		option.Dtstart = dtstart
		rule, err := rrule.NewRRule(option)
		if err != nil {
			return time.Time{}, "", fmt.Errorf("failed to build %s rule: %w", day, err)
		}

		candidate := rule.After(now, false)
		if candidate.IsZero() {
			continue
		}
		if next.IsZero() || candidate.Before(next) {
			next = candidate
			nextDay = day
		}
	}

	if next.IsZero() {
		return time.Time{}, "", ErrEmptySchedule
	}
	return next, nextDay, nil
}
