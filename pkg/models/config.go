package models

import "strings"

const (
	DefaultModel       = "gpt-3.5-turbo"
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultMaxMessages = 20
	DefaultSnoozeTime  = 5
	DefaultHoldTime    = 3
)

// Config holds application configuration
type Config struct {
	AutoStart       bool   `json:"auto_start"`
	APIKey          string `json:"api_key"`           // completion API bearer token
	Model           string `json:"model"`             // completion model name
	BaseURL         string `json:"base_url"`          // completion API root
	MaxMessages     int    `json:"max_messages"`      // conversation cap
	SnoozeTime      int    `json:"snooze_time"`       // minutes
	HoldTimeSeconds int    `json:"hold_time_seconds"` // ring window button hold time
	RingEnabled     bool   `json:"ring_enabled"`      // ring enabled alarms while the app runs
}

// DefaultConfig returns the configuration used before anything is saved
func DefaultConfig() *Config {
	return &Config{
		Model:           DefaultModel,
		BaseURL:         DefaultBaseURL,
		MaxMessages:     DefaultMaxMessages,
		SnoozeTime:      DefaultSnoozeTime,
		HoldTimeSeconds: DefaultHoldTime,
		RingEnabled:     true,
	}
}

// NeedsAPIKey returns true if the assistant cannot reach the completion API yet
func (c *Config) NeedsAPIKey() bool {
	return strings.TrimSpace(c.APIKey) == ""
}

// Normalize fills zero values with defaults and clamps the hold time to 1-10 seconds
func (c *Config) Normalize() {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.MaxMessages <= 0 {
		c.MaxMessages = DefaultMaxMessages
	}
	if c.SnoozeTime < 0 {
		c.SnoozeTime = 0
	}
	if c.HoldTimeSeconds < 1 {
		c.HoldTimeSeconds = DefaultHoldTime
	}
	if c.HoldTimeSeconds > 10 {
		c.HoldTimeSeconds = 10
	}
}
