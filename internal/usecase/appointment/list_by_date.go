package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-queue/internal/domain/position"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// Execute returns every appointment of the date ordered by
// (appointment_time, id). Each carries its position inside its own barber's
// scope; an empty day is an empty slice.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	apps, err := uc.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	byBarber := make(map[uint][]models.Appointment)
	for _, ap := range apps {
		byBarber[ap.BarberID] = append(byBarber[ap.BarberID], ap)
	}

	positions := make(map[uint]int, len(apps))
	for _, scope := range byBarber {
		for id, pos := range position.Index(scope) {
			positions[id] = pos
		}
	}

	for i := range apps {
		apps[i].Position = positions[apps[i].ID]
	}
	return apps, nil
}
