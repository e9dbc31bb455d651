package queue

import (
	"context"

	"github.com/BruksfildServices01/salon-queue/internal/audit"
	domain "github.com/BruksfildServices01/salon-queue/internal/domain/queue"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

type CancelEntry struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelEntry(repo domain.Repository, audit *audit.Dispatcher) *CancelEntry {
	return &CancelEntry{repo: repo, audit: audit}
}

func (uc *CancelEntry) Execute(ctx context.Context, id uint) (*models.QueueEntry, error) {
	return transition(ctx, uc.repo, uc.audit, id, domain.Cancel, "queue_canceled")
}

type CompleteEntry struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteEntry(repo domain.Repository, audit *audit.Dispatcher) *CompleteEntry {
	return &CompleteEntry{repo: repo, audit: audit}
}

func (uc *CompleteEntry) Execute(ctx context.Context, id uint) (*models.QueueEntry, error) {
	return transition(ctx, uc.repo, uc.audit, id, domain.Complete, "queue_completed")
}

type RemoveEntry struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveEntry(repo domain.Repository, audit *audit.Dispatcher) *RemoveEntry {
	return &RemoveEntry{repo: repo, audit: audit}
}

// Execute hard-deletes the entry whatever its status.
func (uc *RemoveEntry) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.audit.Dispatch(audit.Event{
		Action:   "queue_removed",
		Entity:   "queue_entry",
		EntityID: &id,
	})
	return nil
}

func transition(
	ctx context.Context,
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
	id uint,
	apply func(*models.QueueEntry) error,
	action string,
) (*models.QueueEntry, error) {

	e, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(e); err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, e); err != nil {
		return nil, err
	}

	dispatcher.Dispatch(audit.Event{
		Action:   action,
		Entity:   "queue_entry",
		EntityID: &e.ID,
	})
	return e, nil
}
