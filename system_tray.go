package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/borgmon/rise-ease/pkg/models"
)

// Most alarms listed in the tray menu
const trayAlarmLimit = 5

func (re *RiseEase) setupSystemTray() {
	if desk, ok := re.app.(desktop.App); ok {
		desk.SetSystemTrayIcon(theme.MediaRecordIcon())
	}
	re.updateSystemTrayMenu()
}

func (re *RiseEase) updateSystemTrayMenu() {
	desk, ok := re.app.(desktop.App)
	if !ok {
		return
	}

	menuItems := []*fyne.MenuItem{}

	if lines := trayAlarmLines(re.alarmStore.Enabled(), time.Now(), trayAlarmLimit); len(lines) > 0 {
		headerItem := fyne.NewMenuItem("Enabled Alarms:", nil)
		headerItem.Disabled = true
		menuItems = append(menuItems, headerItem)

		for _, line := range lines {
			alarmItem := fyne.NewMenuItem(line, nil)
			alarmItem.Disabled = true
			menuItems = append(menuItems, alarmItem)
		}

		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	}

	quitItem := fyne.NewMenuItem("Quit", func() {
		re.quit()
	})
	quitItem.IsQuit = true

	menuItems = append(menuItems,
		fyne.NewMenuItem("Open Rise Ease", func() {
			re.showMainWindow()
		}),
		fyne.NewMenuItem("Settings", func() {
			re.showSettingsWindow()
		}),
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	desk.SetSystemTrayMenu(fyne.NewMenu("Rise Ease", menuItems...))
}

// trayAlarmLines renders up to limit alarms as "  6:30 am - 7H and 12Min"
func trayAlarmLines(alarms []models.Alarm, now time.Time, limit int) []string {
	lines := make([]string, 0, min(len(alarms), limit))
	for _, alarm := range alarms {
		if len(lines) >= limit {
			break
		}
		lines = append(lines, fmt.Sprintf("  %s - %s", alarm, alarm.Label(now)))
	}
	return lines
}
