package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/borgmon/rise-ease/pkg/models"
)

// AlarmStore owns the alarm list and keeps it ordered by models.CompareAlarms.
// Every mutation returns a fresh sorted copy so callers never share the
// internal slice.
type AlarmStore struct {
	mu sync.RWMutex

	alarms []models.Alarm

	// Last id handed out; ids are never reused after a delete
	lastID int

	// Map of alarm ID to the minute a snoozed alarm rings again
	snoozedUntil map[int]time.Time

	// Map of alarm ID to the minute key it last rang in
	rungAt map[int]int64
}

// SeedAlarm is the alarm the alarm screen starts with
func SeedAlarm() models.Alarm {
	return models.Alarm{
		ID:            1,
		Name:          "Alarm 1",
		Time:          "11:20",
		Period:        models.PeriodAM,
		DurationLabel: "16H and 18Min",
		Enabled:       false,
	}
}

// NewAlarmStore creates a store holding the given alarms
func NewAlarmStore(seed ...models.Alarm) *AlarmStore {
	as := &AlarmStore{
		alarms:       slices.Clone(seed),
		snoozedUntil: make(map[int]time.Time),
		rungAt:       make(map[int]int64),
	}

	for _, alarm := range seed {
		as.lastID = max(as.lastID, alarm.ID)
	}
	as.sortLocked()

	return as
}

// Insert adds a disabled alarm at the given time and returns the sorted list.
// Duplicate times are allowed.
func (as *AlarmStore) Insert(clock string, period models.Period) []models.Alarm {
	as.mu.Lock()
	defer as.mu.Unlock()

	as.lastID++
	as.alarms = append(as.alarms, models.Alarm{
		ID:            as.lastID,
		Name:          fmt.Sprintf("Alarm %d", as.lastID),
		Time:          clock,
		Period:        period,
		DurationLabel: models.DefaultDurationLabel,
		Enabled:       false,
	})
	as.sortLocked()

	return slices.Clone(as.alarms)
}

// Toggle flips the enabled flag of the alarm with the given id. Unknown ids
// leave the list untouched.
func (as *AlarmStore) Toggle(id int) []models.Alarm {
	as.mu.Lock()
	defer as.mu.Unlock()

	for i := range as.alarms {
		if as.alarms[i].ID == id {
			as.alarms[i].Enabled = !as.alarms[i].Enabled
			if !as.alarms[i].Enabled {
				delete(as.snoozedUntil, id)
			}
			break
		}
	}
	as.sortLocked()

	return slices.Clone(as.alarms)
}

// Delete removes the alarm with the given id. Unknown ids leave the list
// untouched and remaining ids are not renumbered.
func (as *AlarmStore) Delete(id int) []models.Alarm {
	as.mu.Lock()
	defer as.mu.Unlock()

	as.alarms = slices.DeleteFunc(as.alarms, func(a models.Alarm) bool {
		return a.ID == id
	})
	delete(as.snoozedUntil, id)
	delete(as.rungAt, id)

	return slices.Clone(as.alarms)
}

// Alarms returns a snapshot of the sorted list
func (as *AlarmStore) Alarms() []models.Alarm {
	as.mu.RLock()
	defer as.mu.RUnlock()

	return slices.Clone(as.alarms)
}

// Get returns the alarm with the given id
func (as *AlarmStore) Get(id int) (models.Alarm, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	for _, alarm := range as.alarms {
		if alarm.ID == id {
			return alarm, true
		}
	}
	return models.Alarm{}, false
}

// Enabled returns the enabled alarms in list order
func (as *AlarmStore) Enabled() []models.Alarm {
	as.mu.RLock()
	defer as.mu.RUnlock()

	result := make([]models.Alarm, 0, len(as.alarms))
	for _, alarm := range as.alarms {
		if alarm.Enabled {
			result = append(result, alarm)
		}
	}
	return result
}

// Due returns the enabled alarms that should ring in now's minute, either
// because their time of day matches or because a snooze ends. Each alarm is
// returned at most once per minute.
func (as *AlarmStore) Due(now time.Time) []models.Alarm {
	as.mu.Lock()
	defer as.mu.Unlock()

	minute := models.RoundToMinute(now)
	minuteKey := minute.Unix()
	result := make([]models.Alarm, 0)

	for _, alarm := range as.alarms {
		if !alarm.Enabled || as.rungAt[alarm.ID] == minuteKey {
			continue
		}

		due := false
		if until, snoozed := as.snoozedUntil[alarm.ID]; snoozed && !models.RoundToMinute(until).After(minute) {
			delete(as.snoozedUntil, alarm.ID)
			due = true
		}
		if hour, mm, err := models.ParseClock(alarm.Time, alarm.Period); err == nil {
			if hour == minute.Hour() && mm == minute.Minute() {
				due = true
			}
		}

		if due {
			as.rungAt[alarm.ID] = minuteKey
			result = append(result, alarm)
		}
	}

	return result
}

// Snooze schedules the alarm to ring again at until
func (as *AlarmStore) Snooze(id int, until time.Time) {
	as.mu.Lock()
	defer as.mu.Unlock()

	for _, alarm := range as.alarms {
		if alarm.ID == id {
			as.snoozedUntil[id] = until
			return
		}
	}
}

// SnoozedUntil reports when a snoozed alarm rings again
func (as *AlarmStore) SnoozedUntil(id int) (time.Time, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	until, ok := as.snoozedUntil[id]
	return until, ok
}

// Dismiss clears any pending snooze for the alarm
func (as *AlarmStore) Dismiss(id int) {
	as.mu.Lock()
	defer as.mu.Unlock()

	delete(as.snoozedUntil, id)
}

// sortLocked re-sorts the list; callers must hold the write lock
func (as *AlarmStore) sortLocked() {
	slices.SortStableFunc(as.alarms, models.CompareAlarms)
}
