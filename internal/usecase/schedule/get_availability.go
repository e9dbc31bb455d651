package schedule

import (
	"context"

	domain "github.com/BruksfildServices01/salon-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-queue/internal/domain/schedule"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute lists the barber's free slots on date in working-hours order.
// Days the barber does not work yield an empty list.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	if len(b.AvailableDays) > 0 && !schedule.WorksOn(b.AvailableDays, day) {
		return []string{}, nil
	}

	wh := b.WorkingHours
	candidates, err := schedule.GenerateSlots(date, wh.Start, wh.End, wh.SlotDuration)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookedSlots(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	return schedule.FilterBooked(candidates, booked), nil
}
