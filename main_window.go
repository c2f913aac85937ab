package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/rise-ease/pkg/models"
)

// MainWindow hosts the Home, Analytics, Assistant and Alarm tabs
type MainWindow struct {
	window fyne.Window
	tabs   *container.AppTabs

	home      *HomeScreen
	analytics *AnalyticsScreen
	assistant *AssistantScreen
	alarms    *AlarmScreen
}

func NewMainWindow(re *RiseEase) *MainWindow {
	mw := &MainWindow{
		window: re.app.NewWindow("Rise Ease"),
	}

	assistantTab := container.NewTabItemWithIcon("Assistant", theme.AccountIcon(), nil)

	mw.home = NewHomeScreen(mw.window, re.configStore, func() {
		mw.tabs.Select(assistantTab)
	})
	mw.analytics = NewAnalyticsScreen(re.tracker)
	mw.assistant = NewAssistantScreen(re.conversation)
	mw.alarms = NewAlarmScreen(mw.window, re.alarmStore, func(alarms []models.Alarm) {
		re.alarmsChanged(alarms)
	})
	assistantTab.Content = mw.assistant.Content()

	mw.tabs = container.NewAppTabs(
		container.NewTabItemWithIcon("Home", theme.HomeIcon(), mw.home.Content()),
		container.NewTabItemWithIcon("Analytics", theme.ListIcon(), mw.analytics.Content()),
		assistantTab,
		container.NewTabItemWithIcon("Alarm", theme.HistoryIcon(), mw.alarms.Content()),
	)
	mw.tabs.SetTabLocation(container.TabLocationBottom)

	toolbar := widget.NewToolbar(
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), re.showSettingsWindow),
	)

	mw.window.SetContent(container.NewBorder(toolbar, nil, nil, nil, mw.tabs))
	mw.window.Resize(fyne.NewSize(420, 760))
	mw.window.SetMaster()

	// Closing hides to the tray on desktop
	if isDesktop(re.app) {
		mw.window.SetCloseIntercept(func() {
			mw.window.Hide()
		})
	}

	return mw
}

func (mw *MainWindow) Show() {
	mw.window.Show()
	mw.window.RequestFocus()
}
