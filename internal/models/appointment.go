package models

import (
	"time"

	"github.com/BruksfildServices01/salon-queue/internal/domain/status"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName  string `gorm:"size:100;not null" json:"customerName"`
	CustomerEmail string `gorm:"size:100;not null" json:"customerEmail"`

	AppointmentTime time.Time `gorm:"not null" json:"appointmentTime"`

	// Wall-clock projections of AppointmentTime taken at write time.
	AppointmentDate string `gorm:"size:10;not null;index:idx_appointments_scope,priority:2;index:idx_active_slot,unique,priority:2,where:status = 'pending'" json:"appointmentDate"`
	SlotTime        string `gorm:"size:5;not null;index:idx_active_slot,unique,priority:3,where:status = 'pending'" json:"slotTime"`

	BarberID uint `gorm:"not null;index:idx_appointments_scope,priority:1;index:idx_active_slot,unique,priority:1,where:status = 'pending'" json:"barberId"`

	Service string `gorm:"size:100;not null" json:"service"`

	Status status.Status `gorm:"size:20;not null;default:'pending';index" json:"status"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Computed on read, never stored.
	Position int `gorm:"-" json:"position"`
}

func (a Appointment) RankKey() (time.Time, uint) {
	return a.CreatedAt, a.ID
}

func (a Appointment) IsActive() bool {
	return a.Status.IsActive()
}
