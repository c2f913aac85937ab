package main

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/rise-ease/pkg/audio"
	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/borgmon/rise-ease/pkg/platform"
	"github.com/borgmon/rise-ease/pkg/ui/components"
	"github.com/google/uuid"
)

// RingOptions configures a ring window
type RingOptions struct {
	SnoozeMinutes int // 0 hides the snooze button
	HoldTime      time.Duration
	Sound         []byte // WAV data looped while the window is open

	OnDismiss func()
	OnSnooze  func()
	OnClosed  func()
}

// RingWindow is the full-screen window shown while an alarm rings
type RingWindow struct {
	window  fyne.Window
	app     fyne.App
	alarm   models.Alarm
	options RingOptions
	session string

	player         *audio.Player
	quitGuard      quitGuard
	stopMonitoring chan struct{}
}

func NewRingWindow(app fyne.App, alarm models.Alarm, options RingOptions) *RingWindow {
	rw := &RingWindow{
		app:            app,
		alarm:          alarm,
		options:        options,
		session:        uuid.NewString(),
		stopMonitoring: make(chan struct{}),
	}

	log.Printf("[ring %s] starting for alarm %d", rw.session, alarm.ID)
	rw.player = audio.PlayLoop(options.Sound)

	// Create window and build UI on the main Fyne thread
	fyne.Do(func() {
		rw.window = app.NewWindow("Rise Ease - " + alarm.Name)
		rw.window.SetFullScreen(true)
		rw.buildUI()

		if isDesktop(app) {
			rw.quitGuard.register(rw.session)
			rw.setupFocusMonitoring()

			// Only the hold buttons close the window
			rw.window.SetCloseIntercept(func() {
				log.Printf("[ring %s] close blocked - hold Dismiss to stop the alarm", rw.session)
			})
		}

		rw.window.SetOnClosed(func() {
			close(rw.stopMonitoring)
			rw.player.Stop()
			rw.quitGuard.unregister()
			log.Printf("[ring %s] closed", rw.session)
			if rw.options.OnClosed != nil {
				rw.options.OnClosed()
			}
		})
	})

	return rw
}

func (rw *RingWindow) buildUI() {
	clock := canvas.NewText(rw.alarm.String(), theme.Color(theme.ColorNameForeground))
	clock.TextSize = 72
	clock.TextStyle = fyne.TextStyle{Bold: true}
	clock.Alignment = fyne.TextAlignCenter

	name := widget.NewLabelWithStyle(rw.alarm.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	greeting := widget.NewLabelWithStyle("Time to rise with ease", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	holdSeconds := int(rw.options.HoldTime / time.Second)

	dismissButton := components.NewHoldButton(fmt.Sprintf("Dismiss (Hold %ds)", holdSeconds), rw.options.HoldTime, func() {
		if rw.options.OnDismiss != nil {
			rw.options.OnDismiss()
		}
		rw.close()
	})

	buttonRow := container.NewHBox()
	if rw.options.SnoozeMinutes > 0 {
		snoozeButton := components.NewHoldButton(
			fmt.Sprintf("Snooze %dm (Hold %ds)", rw.options.SnoozeMinutes, holdSeconds),
			rw.options.HoldTime,
			func() {
				if rw.options.OnSnooze != nil {
					rw.options.OnSnooze()
				}
				rw.close()
			})
		buttonRow.Add(snoozeButton)
	}
	buttonRow.Add(dismissButton)

	content := container.NewVBox(
		container.NewPadded(clock),
		name,
		greeting,
		widget.NewSeparator(),
		container.NewCenter(buttonRow),
	)

	rw.window.SetContent(container.NewPadded(container.NewCenter(content)))
}

// close releases the close intercept and closes the window
func (rw *RingWindow) close() {
	rw.window.SetCloseIntercept(nil)
	rw.window.Close()
}

func (rw *RingWindow) Show() {
	fyne.Do(func() {
		if rw.window != nil {
			rw.window.Show()
			rw.window.RequestFocus()
		}
	})
}

// setupFocusMonitoring keeps the ring window in front until it is closed
func (rw *RingWindow) setupFocusMonitoring() {
	go func() {
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()

		wasFocused := true
		for {
			select {
			case <-rw.stopMonitoring:
				return
			case <-ticker.C:
				isFocused := platform.IsFrontmost()

				switch {
				case wasFocused && !isFocused:
					rw.quitGuard.unregister()
				case !wasFocused && isFocused:
					rw.quitGuard.register(rw.session)
				}

				if !isFocused {
					log.Printf("[ring %s] window not active - bringing to front", rw.session)
					platform.BringToFront()
					fyne.Do(func() {
						rw.window.Show()
					})
				}

				wasFocused = isFocused
			}
		}
	}()
}
