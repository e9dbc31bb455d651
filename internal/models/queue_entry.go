package models

import (
	"time"

	"github.com/BruksfildServices01/salon-queue/internal/domain/status"
)

type QueueEntry struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	Status status.Status `gorm:"size:20;not null;default:'pending';index" json:"status"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Computed on read, never stored.
	Position int `gorm:"-" json:"position"`
}

func (QueueEntry) TableName() string {
	return "queue_entries"
}

func (q QueueEntry) RankKey() (time.Time, uint) {
	return q.CreatedAt, q.ID
}

func (q QueueEntry) IsActive() bool {
	return q.Status.IsActive()
}
