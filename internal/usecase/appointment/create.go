package appointment

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-queue/internal/audit"
	domain "github.com/BruksfildServices01/salon-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-queue/internal/domain/status"
	"github.com/BruksfildServices01/salon-queue/internal/models"
	"github.com/BruksfildServices01/salon-queue/internal/notify"
	"github.com/BruksfildServices01/salon-queue/internal/timezone"
	"github.com/BruksfildServices01/salon-queue/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerName    string `validate:"required"`
	CustomerEmail   string `validate:"required,email"`
	AppointmentTime string `validate:"required"`
	BarberID        uint   `validate:"required"`
	Service         string `validate:"required"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    *audit.Dispatcher
	loc      *time.Location
	now      timezone.Clock
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
	loc *time.Location,
	now timezone.Clock,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		loc:      locOrUTC(loc),
		now:      clockOrSystem(now),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	in.Service = strings.TrimSpace(in.Service)
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	when, err := domain.ParseWhen(in.AppointmentTime, uc.loc)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		AppointmentTime: when.Time,
		AppointmentDate: when.Date,
		SlotTime:        when.Slot,
		BarberID:        in.BarberID,
		Service:         in.Service,
		Status:          status.Pending,
		CreatedAt:       uc.now(),
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		b, err := tx.LockBarber(ctx, in.BarberID)
		if err != nil {
			return err
		}
		if err := domain.CheckBookable(b, when); err != nil {
			return err
		}

		taken, err := tx.SlotTaken(ctx, ap.BarberID, ap.AppointmentDate, ap.SlotTime, 0)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrSlotTaken()
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		ap.Position, err = positionIn(ctx, tx, ap)
		return err
	})
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		if err := uc.notifier.SendConfirmation(ctx, ap.CustomerEmail, details(ap)); err != nil {
			slog.WarnContext(ctx, "confirmation not sent", "appointment_id", ap.ID, "err", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id": ap.BarberID,
			"date":      ap.AppointmentDate,
			"slot":      ap.SlotTime,
			"position":  ap.Position,
		},
	})

	return ap, nil
}
