package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-queue/internal/domain/barber"
	"github.com/BruksfildServices01/salon-queue/internal/domain/status"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

func (r *BarberGormRepository) Transaction(
	ctx context.Context,
	fn func(tx barber.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BarberGormRepository{db: tx})
	})
}

func (r *BarberGormRepository) Create(ctx context.Context, b *models.Barber) error {
	return translate(r.db.WithContext(ctx).Create(b).Error, nil, nil)
}

func (r *BarberGormRepository) Get(ctx context.Context, id uint) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err, barber.ErrNotFound, nil)
	}
	return &b, nil
}

func (r *BarberGormRepository) Lock(ctx context.Context, id uint) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, id).Error; err != nil {
		return nil, translate(err, barber.ErrNotFound, nil)
	}
	return &b, nil
}

func (r *BarberGormRepository) List(ctx context.Context) ([]models.Barber, error) {
	var list []models.Barber
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&list).Error; err != nil {
		return nil, translate(err, nil, nil)
	}
	return list, nil
}

func (r *BarberGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Barber{}, id)
	if res.Error != nil {
		return translate(res.Error, nil, nil)
	}
	if res.RowsAffected == 0 {
		return barber.ErrNotFound()
	}
	return nil
}

func (r *BarberGormRepository) HasPendingAppointments(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("barber_id = ? AND status = ?", id, status.Pending).
		Count(&count).Error; err != nil {
		return false, translate(err, nil, nil)
	}
	return count > 0, nil
}

var _ barber.Repository = (*BarberGormRepository)(nil)
