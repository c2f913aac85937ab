package models

import "fmt"

// SleepMetrics holds the figures shown on the analytics screen
type SleepMetrics struct {
	TotalSleepTime      float64 // minutes
	SleepOnsetLatency   float64 // minutes
	WakeAfterSleepOnset float64 // minutes
	NumberOfAwakenings  int
}

// FormatMinutes renders a metric value the way the analytics cards show it
func FormatMinutes(minutes float64) string {
	return fmt.Sprintf("%.2f mins", minutes)
}
