package barber

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-queue/internal/audit"
	domain "github.com/BruksfildServices01/salon-queue/internal/domain/barber"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

type CreateBarberInput struct {
	Name          string
	Experience    int
	WorkingHours  *models.WorkingHours
	AvailableDays []string

	// ActorID is the admin performing the change, for the audit trail.
	ActorID *uint
}

type CreateBarber struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBarber(repo domain.Repository, audit *audit.Dispatcher) *CreateBarber {
	return &CreateBarber{repo: repo, audit: audit}
}

func (uc *CreateBarber) Execute(ctx context.Context, in CreateBarberInput) (*models.Barber, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.Validation("name_required", "Name is required.")
	}
	if in.Experience < 0 {
		return nil, httperr.Validation("invalid_experience", "Experience cannot be negative.")
	}

	wh := models.DefaultWorkingHours()
	if in.WorkingHours != nil {
		wh = *in.WorkingHours
		if err := domain.ValidateWorkingHours(wh); err != nil {
			return nil, err
		}
	}

	days := models.DefaultAvailableDays()
	if in.AvailableDays != nil {
		var err error
		if days, err = domain.NormalizeDays(in.AvailableDays); err != nil {
			return nil, err
		}
	}

	b := &models.Barber{
		Name:          name,
		Experience:    in.Experience,
		WorkingHours:  wh,
		AvailableDays: days,
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: &b.ID,
	})
	return b, nil
}

type ListBarbers struct {
	repo domain.Repository
}

func NewListBarbers(repo domain.Repository) *ListBarbers {
	return &ListBarbers{repo: repo}
}

func (uc *ListBarbers) Execute(ctx context.Context) ([]models.Barber, error) {
	return uc.repo.List(ctx)
}

type DeleteBarber struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBarber(repo domain.Repository, audit *audit.Dispatcher) *DeleteBarber {
	return &DeleteBarber{repo: repo, audit: audit}
}

// Execute refuses while pending appointments still reference the barber.
// The barber row stays locked from the check to the delete, and bookings
// lock the same row, so no booking can land in between.
// Historical appointments keep their barber id after the delete.
func (uc *DeleteBarber) Execute(ctx context.Context, id uint, actorID *uint) error {
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.Lock(ctx, id); err != nil {
			return err
		}

		busy, err := tx.HasPendingAppointments(ctx, id)
		if err != nil {
			return err
		}
		if busy {
			return domain.ErrHasActiveAppointments()
		}

		return tx.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: &id,
	})
	return nil
}
