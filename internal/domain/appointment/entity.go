package appointment

import (
	"github.com/BruksfildServices01/salon-queue/internal/domain/status"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment) error {
	if !status.CanCancel(ap.Status) {
		return ErrInvalidState()
	}
	ap.Status = status.Canceled
	return nil
}

func Complete(ap *models.Appointment) error {
	if !status.CanComplete(ap.Status) {
		return ErrInvalidState()
	}
	ap.Status = status.Completed
	return nil
}

// Reschedule moves a pending appointment to another slot. Identity, status
// and arrival time are kept.
func Reschedule(ap *models.Appointment, w When) error {
	if !status.CanReschedule(ap.Status) {
		return ErrInvalidState()
	}
	ap.AppointmentTime = w.Time
	ap.AppointmentDate = w.Date
	ap.SlotTime = w.Slot
	return nil
}

// ===============================
// Errors
// ===============================

func ErrNotFound() error {
	return httperr.NotFoundErr("appointment_not_found", "Appointment not found.")
}

func ErrSlotTaken() error {
	return httperr.Conflict("slot_taken", "This slot is already booked.")
}

func ErrInvalidState() error {
	return httperr.Conflict("invalid_state", "Only pending appointments can change state.")
}
