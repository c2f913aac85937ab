package store

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestConfigStoreDefaults(t *testing.T) {
	cs := NewConfigStore(test.NewTempApp(t).Preferences())

	config := cs.Load()

	assert.Equal(t, models.DefaultConfig(), config)
}

func TestConfigStoreRoundTrip(t *testing.T) {
	cs := NewConfigStore(test.NewTempApp(t).Preferences())

	saved := &models.Config{
		AutoStart:       true,
		APIKey:          "sk-test",
		Model:           "gpt-4o-mini",
		BaseURL:         "https://llm.example.com/v1",
		MaxMessages:     10,
		SnoozeTime:      9,
		HoldTimeSeconds: 2,
		RingEnabled:     false,
	}
	cs.Save(saved)

	assert.Equal(t, saved, cs.Load())
}

func TestConfigStoreSchedule(t *testing.T) {
	cs := NewConfigStore(test.NewTempApp(t).Preferences())

	assert.Equal(t, models.DefaultWeekSchedule(), cs.LoadSchedule())

	schedule := models.DefaultWeekSchedule().Set(models.Friday, models.TimeKindBed, "21:00")
	cs.SaveSchedule(schedule)

	assert.Equal(t, schedule, cs.LoadSchedule())
}
