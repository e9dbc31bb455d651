package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-queue/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	return translate(r.db.WithContext(ctx).Create(s).Error, nil, nil)
}

func (r *ServiceGormRepository) Get(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translate(err, catalog.ErrNotFound, nil)
	}
	return &s, nil
}

func (r *ServiceGormRepository) List(ctx context.Context) ([]models.Service, error) {
	var list []models.Service
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, translate(err, nil, nil)
	}
	return list, nil
}

func (r *ServiceGormRepository) Update(ctx context.Context, s *models.Service) error {
	return translate(r.db.WithContext(ctx).Save(s).Error, nil, nil)
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return translate(res.Error, nil, nil)
	}
	if res.RowsAffected == 0 {
		return catalog.ErrNotFound()
	}
	return nil
}

var _ catalog.Repository = (*ServiceGormRepository)(nil)
