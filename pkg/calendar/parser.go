package calendar

import (
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"
)

// ErrNoSleepEvents is returned when a calendar holds no weekly sleep blocks
var ErrNoSleepEvents = errors.New("calendar has no weekly sleep events")

// sleepBlock is one recurring event read from a calendar
type sleepBlock struct {
	UID    string
	Title  string
	Status string
	Start  time.Time
	End    time.Time
	Weekly bool
	Days   []models.DayOfWeek
}

// ImportSchedule reads weekly recurring events and turns them into a week
// schedule: each event's start becomes that day's bedtime and its end the
// alarm. Days without an event keep their default times.
func ImportSchedule(r io.Reader) (models.WeekSchedule, error) {
	decoder := ical.NewDecoder(r)
	schedule := models.DefaultWeekSchedule()
	stats := &importStats{}
	imported := 0

	for {
		cal, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			stats.totalEvents++

			block := parseSleepBlock(comp)
			if !shouldImport(block, stats) {
				continue
			}

			for _, day := range block.Days {
				schedule = schedule.
					Set(day, models.TimeKindBed, block.Start.Format("15:04")).
					Set(day, models.TimeKindAlarm, block.End.Format("15:04"))
				imported++
			}
		}
	}

	stats.logSummary(imported)

	if imported == 0 {
		return nil, ErrNoSleepEvents
	}
	return schedule, nil
}

func parseSleepBlock(comp *ical.Component) sleepBlock {
	normalizeTimezones(comp)
	loc := eventLocation(comp)

	block := sleepBlock{}

	if uidProp := comp.Props.Get(ical.PropUID); uidProp != nil {
		block.UID = uidProp.Value
	}

	if summaryProp := comp.Props.Get(ical.PropSummary); summaryProp != nil {
		block.Title = summaryProp.Value
	}

	if statusProp := comp.Props.Get(ical.PropStatus); statusProp != nil {
		block.Status = strings.ToUpper(statusProp.Value)
	}
	if block.Status != "CANCELLED" && isCancelledTitle(block.Title) {
		block.Status = "CANCELLED"
	}

	if startProp := comp.Props.Get(ical.PropDateTimeStart); startProp != nil {
		if t, err := parseDateTimeProperty(startProp, loc); err == nil {
			block.Start = t
		}
	}

	if endProp := comp.Props.Get(ical.PropDateTimeEnd); endProp != nil {
		if t, err := parseDateTimeProperty(endProp, loc); err == nil {
			block.End = t
		}
	}

	if ruleProp := comp.Props.Get(ical.PropRecurrenceRule); ruleProp != nil {
		option, err := rrule.StrToROption(ruleProp.Value)
		if err != nil {
			log.Printf("  [SKIPPED] Unparseable RRULE %q on \"%s\": %v", ruleProp.Value, block.Title, err)
		} else if option.Freq == rrule.WEEKLY && option.Interval <= 1 {
			block.Weekly = true
			block.Days = ruleDays(option, block.Start)
		}
	}

	return block
}

// ruleDays lists the days a weekly rule fires on, defaulting to the start's weekday
func ruleDays(option *rrule.ROption, start time.Time) []models.DayOfWeek {
	if len(option.Byweekday) == 0 {
		if start.IsZero() {
			return nil
		}
		return []models.DayOfWeek{models.DayFromWeekday(start.Weekday())}
	}

	days := make([]models.DayOfWeek, 0, len(option.Byweekday))
	for _, wd := range option.Byweekday {
		days = append(days, models.DaysOfWeek[wd.Day()])
	}
	return days
}

func parseDateTimeProperty(prop *ical.Prop, loc *time.Location) (time.Time, error) {
	if t, err := prop.DateTime(loc); err == nil {
		if isUTCValue(prop) {
			return t.In(time.Local), nil
		}
		return t, nil
	}

	// Fall back to parsing the raw value in the event's location
	formats := []string{
		"20060102T150405",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, prop.Value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime value: %s", prop.Value)
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

func isCancelledTitle(title string) bool {
	cleanTitle := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "")
	return strings.HasPrefix(cleanTitle, "canceled") || strings.HasPrefix(cleanTitle, "cancelled")
}
