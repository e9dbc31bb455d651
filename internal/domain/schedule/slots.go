package schedule

import (
	"time"

	"github.com/BruksfildServices01/salon-queue/internal/httperr"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// GenerateSlots lists the slot start times of one day, from start up to but
// excluding end. The last slot may overrun end; only its start is checked.
func GenerateSlots(date, start, end string, slotMinutes int) ([]string, error) {
	if slotMinutes <= 0 {
		return nil, httperr.Validation("invalid_slot_duration", "Slot duration must be a positive number of minutes.")
	}

	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, httperr.Validation("invalid_date", "Date must be YYYY-MM-DD.")
	}

	from, err := atClock(day, start)
	if err != nil {
		return nil, err
	}
	to, err := atClock(day, end)
	if err != nil {
		return nil, err
	}

	step := time.Duration(slotMinutes) * time.Minute
	slots := []string{}
	for cur := from; cur.Before(to); cur = cur.Add(step) {
		slots = append(slots, cur.Format(ClockLayout))
	}
	return slots, nil
}

// ParseClock validates an HH:MM wall-clock value.
func ParseClock(hm string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, hm)
	if err != nil {
		return time.Time{}, httperr.Validation("invalid_time", "Time must be HH:MM (24h).")
	}
	return t, nil
}

// day is UTC so the arithmetic never crosses a DST transition.
func atClock(day time.Time, hm string) (time.Time, error) {
	t, err := ParseClock(hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		time.UTC,
	), nil
}
