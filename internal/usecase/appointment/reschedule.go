package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-queue/internal/audit"
	domain "github.com/BruksfildServices01/salon-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
		loc:   locOrUTC(loc),
	}
}

// Execute moves the appointment and returns it with its position in the new
// (barber, date) scope. Arrival time is unchanged, so the appointment keeps its
// place relative to others booked on the new date.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	newAppointmentTime string,
) (*models.Appointment, error) {

	when, err := domain.ParseWhen(newAppointmentTime, uc.loc)
	if err != nil {
		return nil, err
	}

	var ap *models.Appointment
	var from string

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		ap, err = tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}
		from = ap.AppointmentDate + " " + ap.SlotTime

		if err := domain.Reschedule(ap, when); err != nil {
			return err
		}

		b, err := tx.LockBarber(ctx, ap.BarberID)
		if err != nil {
			return err
		}
		if err := domain.CheckBookable(b, when); err != nil {
			return err
		}

		taken, err := tx.SlotTaken(ctx, ap.BarberID, ap.AppointmentDate, ap.SlotTime, ap.ID)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrSlotTaken()
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		ap.Position, err = positionIn(ctx, tx, ap)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": from,
			"to":   ap.AppointmentDate + " " + ap.SlotTime,
		},
	})

	return ap, nil
}
