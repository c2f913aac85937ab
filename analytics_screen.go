package main

import (
	"errors"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/rise-ease/pkg/analytics"
	"github.com/borgmon/rise-ease/pkg/models"
)

// AnalyticsScreen runs a sleep session and shows its metrics
type AnalyticsScreen struct {
	tracker *analytics.Tracker
	content fyne.CanvasObject

	onsetValue      *widget.Label
	wasoValue       *widget.Label
	awakeningsValue *widget.Label
	totalValue      *widget.Label
	status          *widget.Label
	startButton     *widget.Button
	stopButton      *widget.Button
}

func NewAnalyticsScreen(tracker *analytics.Tracker) *AnalyticsScreen {
	as := &AnalyticsScreen{tracker: tracker}
	as.buildUI()
	as.refresh()
	return as
}

func (as *AnalyticsScreen) Content() fyne.CanvasObject {
	return as.content
}

func (as *AnalyticsScreen) buildUI() {
	title := widget.NewLabelWithStyle("Sleep Analytics", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameHeadingText
	subtitle := widget.NewLabel("Based on our data")
	subtitle.Importance = widget.LowImportance

	metricCard := func(name string) (*widget.Card, *widget.Label) {
		value := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		value.SizeName = theme.SizeNameSubHeadingText
		return widget.NewCard("", name, value), value
	}

	onsetCard, onset := metricCard("Sleep Onset Latency")
	wasoCard, waso := metricCard("Wake After Sleep Onset")
	awakeningsCard, awakenings := metricCard("Number of Awakenings")
	totalCard, total := metricCard("Total Sleep Time")
	as.onsetValue, as.wasoValue, as.awakeningsValue, as.totalValue = onset, waso, awakenings, total

	as.startButton = widget.NewButtonWithIcon("Start Sleep", theme.MediaPlayIcon(), as.start)
	as.startButton.Importance = widget.HighImportance
	as.stopButton = widget.NewButtonWithIcon("Stop Sleep", theme.MediaStopIcon(), as.stop)

	as.status = widget.NewLabel("")
	as.status.Importance = widget.LowImportance

	as.content = container.NewVScroll(container.NewPadded(container.NewVBox(
		title,
		subtitle,
		widget.NewLabelWithStyle("Core Sleep Metrics", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2, onsetCard, wasoCard, awakeningsCard, totalCard),
		container.NewGridWithColumns(2, as.startButton, as.stopButton),
		as.status,
	)))
}

func (as *AnalyticsScreen) start() {
	as.tracker.Start()
	log.Println("Sleep tracking started")
	as.refresh()
}

func (as *AnalyticsScreen) stop() {
	metrics, err := as.tracker.Stop()
	if err != nil && !errors.Is(err, analytics.ErrNotTracking) {
		log.Printf("Failed to stop sleep tracking: %v", err)
	}
	if err == nil {
		log.Printf("Sleep tracking stopped after %s", models.FormatMinutes(metrics.TotalSleepTime))
	}
	as.refresh()
}

func (as *AnalyticsScreen) refresh() {
	metrics := as.tracker.Metrics()
	as.onsetValue.SetText(models.FormatMinutes(metrics.SleepOnsetLatency))
	as.wasoValue.SetText(models.FormatMinutes(metrics.WakeAfterSleepOnset))
	as.awakeningsValue.SetText(strconv.Itoa(metrics.NumberOfAwakenings))
	as.totalValue.SetText(models.FormatMinutes(metrics.TotalSleepTime))

	if started, tracking := as.tracker.StartedAt(); tracking {
		as.startButton.Disable()
		as.stopButton.Enable()
		as.status.SetText("Tracking since " + started.Format("15:04"))
	} else {
		as.startButton.Enable()
		as.stopButton.Disable()
		as.status.SetText("")
	}
}
