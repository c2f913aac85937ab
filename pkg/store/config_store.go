package store

import (
	"encoding/json"

	"fyne.io/fyne/v2"
	"github.com/borgmon/rise-ease/pkg/models"
)

// ConfigStore handles configuration persistence using Fyne preferences
type ConfigStore struct {
	prefs fyne.Preferences
}

// NewConfigStore creates a new ConfigStore instance
func NewConfigStore(prefs fyne.Preferences) *ConfigStore {
	return &ConfigStore{prefs: prefs}
}

// Load loads configuration from preferences
func (cs *ConfigStore) Load() *models.Config {
	defaults := models.DefaultConfig()

	config := &models.Config{
		AutoStart:       cs.prefs.BoolWithFallback("auto_start", defaults.AutoStart),
		APIKey:          cs.prefs.String("api_key"),
		Model:           cs.prefs.StringWithFallback("model", defaults.Model),
		BaseURL:         cs.prefs.StringWithFallback("base_url", defaults.BaseURL),
		MaxMessages:     cs.prefs.IntWithFallback("max_messages", defaults.MaxMessages),
		SnoozeTime:      cs.prefs.IntWithFallback("snooze_time", defaults.SnoozeTime),
		HoldTimeSeconds: cs.prefs.IntWithFallback("hold_time_seconds", defaults.HoldTimeSeconds),
		RingEnabled:     cs.prefs.BoolWithFallback("ring_enabled", defaults.RingEnabled),
	}
	config.Normalize()

	return config
}

// Save saves configuration to preferences
func (cs *ConfigStore) Save(config *models.Config) {
	cs.prefs.SetBool("auto_start", config.AutoStart)
	cs.prefs.SetString("api_key", config.APIKey)
	cs.prefs.SetString("model", config.Model)
	cs.prefs.SetString("base_url", config.BaseURL)
	cs.prefs.SetInt("max_messages", config.MaxMessages)
	cs.prefs.SetInt("snooze_time", config.SnoozeTime)
	cs.prefs.SetInt("hold_time_seconds", config.HoldTimeSeconds)
	cs.prefs.SetBool("ring_enabled", config.RingEnabled)
}

// LoadSchedule loads the weekly bed/alarm schedule, falling back to the defaults
func (cs *ConfigStore) LoadSchedule() models.WeekSchedule {
	schedule := models.DefaultWeekSchedule()

	// Stored as a JSON string keyed by day
	scheduleJSON := cs.prefs.String("week_schedule")
	if scheduleJSON == "" {
		return schedule
	}

	stored := models.WeekSchedule{}
	if err := json.Unmarshal([]byte(scheduleJSON), &stored); err != nil {
		return schedule
	}
	for day, times := range stored {
		if _, known := schedule[day]; known {
			schedule[day] = times
		}
	}

	return schedule
}

// SaveSchedule saves the weekly bed/alarm schedule
func (cs *ConfigStore) SaveSchedule(schedule models.WeekSchedule) {
	if scheduleJSON, err := json.Marshal(schedule); err == nil {
		cs.prefs.SetString("week_schedule", string(scheduleJSON))
	}
}
