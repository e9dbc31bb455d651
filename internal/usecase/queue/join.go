package queue

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-queue/internal/audit"
	"github.com/BruksfildServices01/salon-queue/internal/domain/position"
	domain "github.com/BruksfildServices01/salon-queue/internal/domain/queue"
	"github.com/BruksfildServices01/salon-queue/internal/domain/status"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/models"
	"github.com/BruksfildServices01/salon-queue/internal/timezone"
)

type JoinQueueInput struct {
	Name string
	// Status is optional; absent or unknown values join as pending.
	Status string
}

type JoinQueue struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   timezone.Clock
}

func NewJoinQueue(repo domain.Repository, audit *audit.Dispatcher, now timezone.Clock) *JoinQueue {
	if now == nil {
		now = timezone.SystemClock
	}
	return &JoinQueue{repo: repo, audit: audit, now: now}
}

func (uc *JoinQueue) Execute(ctx context.Context, in JoinQueueInput) (*models.QueueEntry, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.Validation("name_required", "Name is required.")
	}

	e := &models.QueueEntry{
		Name:      name,
		Status:    status.OrPending(strings.ToLower(strings.TrimSpace(in.Status))),
		CreatedAt: uc.now(),
	}

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.Create(ctx, e); err != nil {
			return err
		}
		return rank(ctx, tx, e)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "queue_joined",
		Entity:   "queue_entry",
		EntityID: &e.ID,
		Metadata: map[string]any{"position": e.Position},
	})

	return e, nil
}

// rank fills e.Position from the current pending set.
func rank(ctx context.Context, repo domain.Repository, e *models.QueueEntry) error {
	if !e.IsActive() {
		e.Position = 0
		return nil
	}
	pending, err := repo.ListPending(ctx)
	if err != nil {
		return err
	}
	e.Position, _ = position.Of(pending, e.ID)
	return nil
}
