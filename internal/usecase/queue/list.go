package queue

import (
	"context"

	"github.com/BruksfildServices01/salon-queue/internal/domain/position"
	domain "github.com/BruksfildServices01/salon-queue/internal/domain/queue"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

type ListQueue struct {
	repo domain.Repository
}

func NewListQueue(repo domain.Repository) *ListQueue {
	return &ListQueue{repo: repo}
}

// Execute returns pending entries ranked 1..N, then the rest with position 0.
func (uc *ListQueue) Execute(ctx context.Context) ([]models.QueueEntry, error) {
	entries, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ranked := position.Rank(entries)
	out := make([]models.QueueEntry, 0, len(ranked))
	for _, r := range ranked {
		e := r.Item
		e.Position = r.Position
		out = append(out, e)
	}
	return out, nil
}
