package main

import (
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/borgmon/rise-ease/pkg/analytics"
	"github.com/borgmon/rise-ease/pkg/assistant"
	"github.com/borgmon/rise-ease/pkg/audio"
	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/borgmon/rise-ease/pkg/store"
	"github.com/spf13/viper"
)

const appID = "io.github.borgmon.rise-ease"

// How often enabled alarms are checked and duration labels redrawn
const ringCheckInterval = 15 * time.Second

type RiseEase struct {
	app          fyne.App
	config       atomic.Pointer[models.Config] // swapped on the UI thread, read by the ringer
	configStore  *store.ConfigStore
	alarmStore   *store.AlarmStore
	tracker      *analytics.Tracker
	conversation *assistant.Conversation

	mainWindow     *MainWindow
	settingsWindow *SettingsWindow
	ringTicker     *time.Ticker
	stopRinger     chan struct{}
	ringerDone     chan struct{}
	stopOnce       sync.Once

	// Alarm ids with an open ring window
	ringMu  sync.Mutex
	ringing map[int]bool
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGUI() error {
	re := &RiseEase{
		app:        app.NewWithID(appID),
		alarmStore: store.NewAlarmStore(store.SeedAlarm()),
		tracker:    analytics.NewTracker(),
		ringing:    make(map[int]bool),
	}

	if err := re.initialize(); err != nil {
		return err
	}

	re.run()
	return nil
}

func (re *RiseEase) initialize() error {
	re.configStore = store.NewConfigStore(re.app.Preferences())
	config := loadConfig(re.configStore, viper.GetViper())
	re.config.Store(config)

	// Sync autostart state with config on startup
	if isDesktop(re.app) {
		if err := setupAutostart(config.AutoStart); err != nil {
			log.Printf("Warning: failed to setup autostart: %v", err)
		}
	}

	re.conversation = assistant.NewConversation(re.completer(), config.MaxMessages)
	re.mainWindow = NewMainWindow(re)

	re.setupSystemTray()
	re.startRinger()

	if config.NeedsAPIKey() {
		log.Println("No completion API key configured; the assistant will apologise until one is set in Settings")
	}

	return nil
}

func (re *RiseEase) run() {
	re.mainWindow.Show()
	re.app.Run()
}

// completer builds the chat backend from the current settings
func (re *RiseEase) completer() assistant.Completer {
	config := re.settings()
	return assistant.NewClient(assistant.ClientConfig{
		BaseURL: config.BaseURL,
		APIKey:  config.APIKey,
		Model:   config.Model,
		Timeout: 90 * time.Second,
	})
}

// applyConfig swaps in settings saved from the settings window
func (re *RiseEase) applyConfig(config *models.Config) {
	saveConfig(re.configStore, config)
	re.config.Store(config)
	re.conversation.SetCompleter(re.completer())
	re.updateSystemTrayMenu()
}

func (re *RiseEase) showMainWindow() {
	re.mainWindow.Show()
}

func (re *RiseEase) showSettingsWindow() {
	// If settings window already exists, just bring it to front
	if re.settingsWindow != nil {
		re.settingsWindow.window.RequestFocus()
		re.settingsWindow.Show()
		return
	}

	re.settingsWindow = NewSettingsWindow(re.app, re.settings(), re.configStore, func(config *models.Config) {
		re.applyConfig(config)
	}, func(schedule models.WeekSchedule) {
		re.mainWindow.home.SetSchedule(schedule)
	})
	re.settingsWindow.window.SetOnClosed(func() {
		re.settingsWindow = nil
	})

	re.settingsWindow.Show()
}

// alarmsChanged redraws everything that shows the alarm list
func (re *RiseEase) alarmsChanged(alarms []models.Alarm) {
	re.mainWindow.alarms.SetAlarms(alarms)
	re.updateSystemTrayMenu()
}

// settings returns the current configuration. The value is never mutated
// after it is stored.
func (re *RiseEase) settings() *models.Config {
	return re.config.Load()
}

func (re *RiseEase) startRinger() {
	re.ringTicker = time.NewTicker(ringCheckInterval)
	re.stopRinger = make(chan struct{})
	re.ringerDone = make(chan struct{})

	go func() {
		defer close(re.ringerDone)
		for {
			select {
			case <-re.stopRinger:
				return
			case now := <-re.ringTicker.C:
				re.checkAlarms(now)
				fyne.Do(func() {
					re.mainWindow.alarms.Refresh()
					re.updateSystemTrayMenu()
				})
			}
		}
	}()
}

// shutdownRinger stops the ticker goroutine. Safe to call more than once.
func (re *RiseEase) shutdownRinger() {
	re.stopOnce.Do(func() {
		if re.ringTicker == nil {
			return
		}
		re.ringTicker.Stop()
		close(re.stopRinger)
	})
}

func (re *RiseEase) checkAlarms(now time.Time) {
	config := re.settings()
	if !config.RingEnabled {
		return
	}

	for _, alarm := range re.alarmStore.Due(now) {
		log.Printf("Alarm %d (%s) ringing at %s", alarm.ID, alarm, now.Format("15:04"))
		re.showRing(alarm, config)
	}
}

func (re *RiseEase) showRing(alarm models.Alarm, config *models.Config) {
	// One ring window per alarm
	re.ringMu.Lock()
	if re.ringing[alarm.ID] {
		re.ringMu.Unlock()
		return
	}
	re.ringing[alarm.ID] = true
	re.ringMu.Unlock()

	snoozeMinutes := config.SnoozeTime
	ring := NewRingWindow(re.app, alarm, RingOptions{
		SnoozeMinutes: snoozeMinutes,
		HoldTime:      time.Duration(config.HoldTimeSeconds) * time.Second,
		Sound:         audio.Chime(),
		OnDismiss: func() {
			re.alarmStore.Dismiss(alarm.ID)
			log.Printf("Alarm %d dismissed", alarm.ID)
		},
		OnSnooze: func() {
			re.snooze(alarm.ID, snoozeMinutes, time.Now())
		},
		OnClosed: func() {
			re.ringMu.Lock()
			delete(re.ringing, alarm.ID)
			re.ringMu.Unlock()
		},
	})
	ring.Show()
}

// snooze schedules a re-ring unless the alarm was deleted or switched off
// while its window was open
func (re *RiseEase) snooze(id, minutes int, now time.Time) bool {
	alarm, ok := re.alarmStore.Get(id)
	if !ok || !alarm.Enabled {
		log.Printf("Alarm %d is gone or disabled, not snoozing", id)
		return false
	}

	until := now.Add(time.Duration(minutes) * time.Minute)
	re.alarmStore.Snooze(id, until)
	log.Printf("Alarm %d snoozed until %s", id, until.Format(time.Kitchen))
	return true
}

func (re *RiseEase) quit() {
	re.shutdownRinger()
	re.mainWindow.home.StopMusic()
	re.app.Quit()
}

func isDesktop(a fyne.App) bool {
	_, ok := a.(desktop.App)
	return ok
}
