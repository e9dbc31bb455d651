package status

import (
	"database/sql/driver"
	"fmt"
)

// ===============================
// Lifecycle Status
// ===============================

type Status string

const (
	Pending   Status = "pending"
	Canceled  Status = "canceled"
	Completed Status = "completed"

	// Scheduled is never written by this service. Rows carrying it still
	// occupy their slot.
	Scheduled Status = "scheduled"
)

func Parse(s string) (Status, bool) {
	switch Status(s) {
	case Pending, Canceled, Completed, Scheduled:
		return Status(s), true
	}
	return "", false
}

// OrPending coerces an absent or unknown value to Pending. Only the three
// lifecycle states are accepted as an initial status.
func OrPending(s string) Status {
	switch Status(s) {
	case Pending, Canceled, Completed:
		return Status(s)
	}
	return Pending
}

// IsActive reports whether an entry takes part in position ranking.
func (s Status) IsActive() bool {
	return s == Pending
}

// BookingActive lists the statuses that keep a slot booked.
func BookingActive() []Status {
	return []Status{Pending, Scheduled}
}

// ===============================
// Transitions
// ===============================

func CanCancel(current Status) bool {
	return current == Pending
}

func CanComplete(current Status) bool {
	return current == Pending
}

func CanReschedule(current Status) bool {
	return current == Pending
}

// ===============================
// GORM column mapping
// ===============================

func (s Status) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *Status) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*s = ""
		return nil
	default:
		return fmt.Errorf("status: cannot scan %T", src)
	}

	parsed, ok := Parse(raw)
	if !ok {
		return fmt.Errorf("status: unknown value %q", raw)
	}
	*s = parsed
	return nil
}
