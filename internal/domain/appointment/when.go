package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-queue/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
)

// When is a booked instant with its wall-clock date and slot projections.
type When struct {
	Time time.Time
	Date string
	Slot string
}

var zonelessLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseWhen reads an ISO date-time. An explicit offset keeps its own wall
// clock; zone-less values are read in loc.
func ParseWhen(raw string, loc *time.Location) (When, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return When{}, httperr.Validation("appointment_time_required", "Appointment time is required.")
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = parseZoneless(raw, loc)
		if err != nil {
			return When{}, httperr.Validation("invalid_appointment_time", "Appointment time must be an ISO date-time.")
		}
	}

	return When{
		Time: t,
		Date: t.Format(schedule.DateLayout),
		Slot: t.Format(schedule.ClockLayout),
	}, nil
}

func parseZoneless(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	var lastErr error
	for _, layout := range zonelessLayouts {
		t, err := time.ParseInLocation(layout, raw, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ParseDate validates a YYYY-MM-DD calendar date.
func ParseDate(raw string) (time.Time, error) {
	d, err := time.Parse(schedule.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, httperr.Validation("invalid_date", "Date must be YYYY-MM-DD.")
	}
	return d, nil
}
