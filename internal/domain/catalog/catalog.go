// Package catalog holds the salon's service menu. Appointments name a service
// by label and do not reference catalog rows.
package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Service) error
	Get(ctx context.Context, id uint) (*models.Service, error)
	List(ctx context.Context) ([]models.Service, error)
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id uint) error
}

func ErrNotFound() error {
	return httperr.NotFoundErr("service_not_found", "Service not found.")
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Name        *string
	Type        *string
	DurationMin *int
	Price       *float64
}

func Validate(s *models.Service) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return httperr.Validation("name_required", "Name is required.")
	}
	if s.DurationMin <= 0 {
		return httperr.Validation("invalid_duration", "Duration must be at least one minute.")
	}
	if s.Price < 0 {
		return httperr.Validation("invalid_price", "Price cannot be negative.")
	}
	return nil
}

func Apply(s *models.Service, p Patch) error {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Type != nil {
		s.Type = strings.TrimSpace(*p.Type)
	}
	if p.DurationMin != nil {
		s.DurationMin = *p.DurationMin
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	return Validate(s)
}
