package appointment

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/salon-queue/internal/audit"
	domain "github.com/BruksfildServices01/salon-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-queue/internal/models"
	"github.com/BruksfildServices01/salon-queue/internal/notify"
)

type CancelAppointment struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		if err := uc.notifier.SendCancellation(ctx, ap.CustomerEmail, details(ap)); err != nil {
			slog.WarnContext(ctx, "cancellation not sent", "appointment_id", ap.ID, "err", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_canceled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
