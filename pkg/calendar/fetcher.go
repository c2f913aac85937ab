package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/borgmon/rise-ease/pkg/models"
	"github.com/go-resty/resty/v2"
)

var httpClient = resty.New().
	SetTimeout(30*time.Second).
	SetHeader("Accept", "text/calendar, */*;q=0.5")

// FetchSchedule downloads an iCalendar subscription and imports it as a week schedule
func FetchSchedule(ctx context.Context, icalURL string) (models.WeekSchedule, error) {
	// webcal:// is the subscription alias for https://
	if rest, ok := strings.CutPrefix(icalURL, "webcal://"); ok {
		icalURL = "https://" + rest
	}

	resp, err := httpClient.R().
		SetContext(ctx).
		Get(icalURL)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("calendar server returned status %d", resp.StatusCode())
	}

	body := resp.String()
	if err := validateICalFormat(body); err != nil {
		return nil, err
	}

	return ImportSchedule(strings.NewReader(body))
}

func validateICalFormat(bodyStr string) error {
	trimmed := strings.TrimSpace(bodyStr)

	// Check if response is HTML instead of iCalendar
	upperBody := strings.ToUpper(trimmed)
	if strings.HasPrefix(upperBody, "<!DOCTYPE") || strings.HasPrefix(upperBody, "<HTML") {
		return fmt.Errorf("received HTML instead of iCalendar data - check if URL requires authentication")
	}

	if !strings.HasPrefix(trimmed, "BEGIN:VCALENDAR") {
		preview := trimmed[:min(len(trimmed), 100)]
		return fmt.Errorf("invalid iCalendar format - expected BEGIN:VCALENDAR, got: %s", preview)
	}

	return nil
}
