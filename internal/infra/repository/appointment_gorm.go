package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-queue/internal/domain/barber"
	"github.com/BruksfildServices01/salon-queue/internal/domain/status"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err, barber.ErrNotFound, nil)
	}
	return &b, nil
}

func (r *AppointmentGormRepository) LockBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, id).Error; err != nil {
		return nil, translate(err, barber.ErrNotFound, nil)
	}
	return &b, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).Create(ap).Error
	return translate(err, nil, domain.ErrSlotTaken)
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, translate(err, domain.ErrNotFound, nil)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).Save(ap).Error
	return translate(err, nil, domain.ErrSlotTaken)
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return translate(res.Error, nil, nil)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound()
	}
	return nil
}

func (r *AppointmentGormRepository) SlotTaken(
	ctx context.Context,
	barberID uint,
	date string,
	slot string,
	exceptID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND appointment_date = ? AND slot_time = ? AND status IN ? AND id <> ?",
			barberID, date, slot, status.BookingActive(), exceptID,
		).
		Count(&count).Error; err != nil {
		return false, translate(err, nil, nil)
	}

	return count > 0, nil
}

// --------------------------------------------------
// Scopes
// --------------------------------------------------

func (r *AppointmentGormRepository) ListPendingScope(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND appointment_date = ? AND status = ?",
			barberID, date, status.Pending,
		).
		Order("created_at ASC, id ASC").
		Find(&apps).Error; err != nil {
		return nil, translate(err, nil, nil)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("appointment_date = ?", date).
		Order("appointment_time ASC, id ASC").
		Find(&apps).Error; err != nil {
		return nil, translate(err, nil, nil)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListBookedSlots(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	var slots []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND appointment_date = ? AND status IN ?",
			barberID, date, status.BookingActive(),
		).
		Order("slot_time ASC").
		Pluck("slot_time", &slots).Error; err != nil {
		return nil, translate(err, nil, nil)
	}

	return slots, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
