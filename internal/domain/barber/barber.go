package barber

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-queue/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

type Repository interface {
	// Transaction runs fn against a repository bound to one transaction.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	Create(ctx context.Context, b *models.Barber) error
	Get(ctx context.Context, id uint) (*models.Barber, error)

	// Lock loads the barber and holds its row until the transaction ends.
	Lock(ctx context.Context, id uint) (*models.Barber, error)
	List(ctx context.Context) ([]models.Barber, error)
	Delete(ctx context.Context, id uint) error

	// HasPendingAppointments reports whether any pending appointment still
	// references the barber.
	HasPendingAppointments(ctx context.Context, id uint) (bool, error)
}

func ErrNotFound() error {
	return httperr.NotFoundErr("barber_not_found", "Barber not found.")
}

func ErrHasActiveAppointments() error {
	return httperr.Conflict(
		"barber_has_active_appointments",
		"Barber still has pending appointments.",
	)
}

// ValidateWorkingHours checks the clock fields and the slot length.
func ValidateWorkingHours(wh models.WorkingHours) error {
	start, err := schedule.ParseClock(wh.Start)
	if err != nil {
		return httperr.Validation("invalid_working_hours", "Working hours must be HH:MM.")
	}
	end, err := schedule.ParseClock(wh.End)
	if err != nil {
		return httperr.Validation("invalid_working_hours", "Working hours must be HH:MM.")
	}
	if !start.Before(end) {
		return httperr.Validation("invalid_working_hours", "Working hours must start before they end.")
	}
	if wh.SlotDuration <= 0 {
		return httperr.Validation("invalid_slot_duration", "Slot duration must be positive.")
	}
	return nil
}

// NormalizeDays canonicalizes weekday names. An empty list is kept empty.
func NormalizeDays(days []string) ([]string, error) {
	out := make([]string, 0, len(days))
	seen := map[string]bool{}
	for _, d := range days {
		wd, ok := schedule.ParseWeekday(d)
		if !ok {
			return nil, httperr.Validation("invalid_available_days", "Unknown weekday "+strings.TrimSpace(d)+".")
		}
		name := wd.String()
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out, nil
}
