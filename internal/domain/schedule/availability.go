package schedule

import (
	"strings"
	"time"
)

// FilterBooked removes booked slot times from candidates, keeping candidate order.
func FilterBooked(candidates []string, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	out := make([]string, 0, len(candidates))
	for _, slot := range candidates {
		if _, ok := taken[slot]; ok {
			continue
		}
		out = append(out, slot)
	}
	return out
}

// WorksOn reports whether a day set (English weekday names, any case)
// contains the weekday of date.
func WorksOn(days []string, date time.Time) bool {
	want := date.Weekday().String()
	for _, d := range days {
		if strings.EqualFold(strings.TrimSpace(d), want) {
			return true
		}
	}
	return false
}

// ParseWeekday accepts an English weekday name in any case.
func ParseWeekday(name string) (time.Weekday, bool) {
	name = strings.TrimSpace(name)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, true
		}
	}
	return 0, false
}
