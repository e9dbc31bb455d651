package queue

import (
	"context"

	domain "github.com/BruksfildServices01/salon-queue/internal/domain/queue"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

type GetPosition struct {
	repo domain.Repository
}

func NewGetPosition(repo domain.Repository) *GetPosition {
	return &GetPosition{repo: repo}
}

func (uc *GetPosition) Execute(ctx context.Context, id uint) (*models.QueueEntry, error) {
	e, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rank(ctx, uc.repo, e); err != nil {
		return nil, err
	}
	return e, nil
}
