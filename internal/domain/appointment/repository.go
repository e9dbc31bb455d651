package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-queue/internal/models"
)

// Repository is the appointment store. Missing rows are reported as
// not-found business errors, unique-slot violations as ErrSlotTaken.
type Repository interface {
	// Transaction runs fn against a repository bound to one transaction.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// LockBarber loads the barber and holds its row until the transaction
	// ends, so bookings and barber deletion serialize.
	LockBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// -------- Appointment (state) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// SlotTaken reports whether a pending appointment other than exceptID
	// holds the barber's slot on date.
	SlotTaken(
		ctx context.Context,
		barberID uint,
		date string,
		slot string,
		exceptID uint,
	) (bool, error)

	// -------- Scopes --------

	// ListPendingScope returns the pending appointments of one barber-date
	// ordered by (created_at, id).
	ListPendingScope(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Appointment, error)

	// ListByDate returns every appointment of a date, any status and barber.
	ListByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	// ListBookedSlots returns the slot times that still hold a booking.
	ListBookedSlots(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]string, error)
}
