package models

import "time"

// Service is a catalog entry. Appointments carry the service as a free label.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Type        string  `gorm:"size:100" json:"type"`
	DurationMin int     `gorm:"not null;default:30" json:"durationMin"`
	Price       float64 `gorm:"not null;default:0" json:"price"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
