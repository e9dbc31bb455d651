package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-queue/internal/domain/queue"
	"github.com/BruksfildServices01/salon-queue/internal/domain/status"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

type QueueGormRepository struct {
	db *gorm.DB
}

func NewQueueGormRepository(db *gorm.DB) *QueueGormRepository {
	return &QueueGormRepository{db: db}
}

func (r *QueueGormRepository) Transaction(
	ctx context.Context,
	fn func(tx queue.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&QueueGormRepository{db: tx})
	})
}

func (r *QueueGormRepository) Create(ctx context.Context, e *models.QueueEntry) error {
	return translate(r.db.WithContext(ctx).Create(e).Error, nil, nil)
}

func (r *QueueGormRepository) Get(ctx context.Context, id uint) (*models.QueueEntry, error) {
	var e models.QueueEntry
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, translate(err, queue.ErrNotFound, nil)
	}
	return &e, nil
}

func (r *QueueGormRepository) Update(ctx context.Context, e *models.QueueEntry) error {
	return translate(r.db.WithContext(ctx).Save(e).Error, nil, nil)
}

func (r *QueueGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.QueueEntry{}, id)
	if res.Error != nil {
		return translate(res.Error, nil, nil)
	}
	if res.RowsAffected == 0 {
		return queue.ErrNotFound()
	}
	return nil
}

func (r *QueueGormRepository) ListAll(ctx context.Context) ([]models.QueueEntry, error) {
	var entries []models.QueueEntry
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, translate(err, nil, nil)
	}
	return entries, nil
}

func (r *QueueGormRepository) ListPending(ctx context.Context) ([]models.QueueEntry, error) {
	var entries []models.QueueEntry
	if err := r.db.WithContext(ctx).
		Where("status = ?", status.Pending).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, translate(err, nil, nil)
	}
	return entries, nil
}

var _ queue.Repository = (*QueueGormRepository)(nil)
