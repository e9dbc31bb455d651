package models

import "time"

type Barber struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Experience int    `gorm:"not null;default:0" json:"experience"`

	WorkingHours  WorkingHours `gorm:"embedded;embeddedPrefix:working_hours_" json:"workingHours"`
	AvailableDays []string     `gorm:"serializer:json;type:text" json:"availableDays"`

	CreatedAt time.Time `json:"createdAt"`
}
