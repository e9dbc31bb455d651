package queue

import (
	"context"

	"github.com/BruksfildServices01/salon-queue/internal/domain/status"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	Create(ctx context.Context, e *models.QueueEntry) error
	Get(ctx context.Context, id uint) (*models.QueueEntry, error)
	Update(ctx context.Context, e *models.QueueEntry) error
	Delete(ctx context.Context, id uint) error

	// ListAll returns every entry in store order (id ascending).
	ListAll(ctx context.Context) ([]models.QueueEntry, error)

	// ListPending returns pending entries ordered by (created_at, id).
	ListPending(ctx context.Context) ([]models.QueueEntry, error)
}

func ErrNotFound() error {
	return httperr.NotFoundErr("queue_entry_not_found", "Queue entry not found.")
}

func ErrInvalidState() error {
	return httperr.Conflict("invalid_state", "Only pending queue entries can change state.")
}

func Cancel(e *models.QueueEntry) error {
	if !status.CanCancel(e.Status) {
		return ErrInvalidState()
	}
	e.Status = status.Canceled
	return nil
}

func Complete(e *models.QueueEntry) error {
	if !status.CanComplete(e.Status) {
		return ErrInvalidState()
	}
	e.Status = status.Completed
	return nil
}
