package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-queue/internal/domain/position"
	"github.com/BruksfildServices01/salon-queue/internal/models"
	"github.com/BruksfildServices01/salon-queue/internal/notify"
	"github.com/BruksfildServices01/salon-queue/internal/timezone"
)

// positionIn ranks the (barber, date) scope of ap and returns its position.
func positionIn(ctx context.Context, repo domain.Repository, ap *models.Appointment) (int, error) {
	scope, err := repo.ListPendingScope(ctx, ap.BarberID, ap.AppointmentDate)
	if err != nil {
		return 0, err
	}
	pos, _ := position.Of(scope, ap.ID)
	return pos, nil
}

func details(ap *models.Appointment) notify.Details {
	return notify.Details{
		AppointmentID:   ap.ID,
		CustomerName:    ap.CustomerName,
		BarberID:        ap.BarberID,
		Service:         ap.Service,
		AppointmentTime: ap.AppointmentTime,
		AppointmentDate: ap.AppointmentDate,
		SlotTime:        ap.SlotTime,
		Position:        ap.Position,
	}
}

func clockOrSystem(c timezone.Clock) timezone.Clock {
	if c == nil {
		return timezone.SystemClock
	}
	return c
}

func locOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
