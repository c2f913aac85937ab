package calendar

import (
	"log"
	"time"
)

type importStats struct {
	totalEvents      int
	skippedMissing   int
	skippedCancelled int
	skippedAllDay    int
	skippedNotWeekly int
}

// shouldImport decides whether a parsed event can stand for a night in the schedule
func shouldImport(block sleepBlock, stats *importStats) bool {
	if block.Start.IsZero() || block.End.IsZero() {
		stats.skippedMissing++
		log.Printf("  [SKIPPED] Missing time - Event: \"%s\" (Start: %v, End: %v)",
			block.Title, block.Start, block.End)
		return false
	}

	if block.Status == "CANCELLED" {
		stats.skippedCancelled++
		log.Printf("  [SKIPPED] [Cancelled] - Event: \"%s\"", block.Title)
		return false
	}

	// A night never lasts a full day
	if block.End.Sub(block.Start) >= 24*time.Hour || !block.End.After(block.Start) {
		stats.skippedAllDay++
		log.Printf("  [SKIPPED] [All-day] - Event: \"%s\" (Start: %s, End: %s)",
			block.Title, block.Start.Format("2006-01-02 15:04"), block.End.Format("2006-01-02 15:04"))
		return false
	}

	if !block.Weekly || len(block.Days) == 0 {
		stats.skippedNotWeekly++
		log.Printf("  [SKIPPED] [Not weekly] - Event: \"%s\"", block.Title)
		return false
	}

	return true
}

func (s *importStats) logSummary(importedDays int) {
	skipped := s.skippedMissing + s.skippedCancelled + s.skippedAllDay + s.skippedNotWeekly
	log.Printf("  [SUMMARY] Events: %d, Days imported: %d, Skipped: %d",
		s.totalEvents, importedDays, skipped)
	if skipped > 0 {
		log.Printf("  Skipped breakdown: %d cancelled, %d all-day, %d not weekly, %d missing time",
			s.skippedCancelled, s.skippedAllDay, s.skippedNotWeekly, s.skippedMissing)
	}
}
