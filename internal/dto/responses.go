package dto

import "time"

type AppointmentCreatedDTO struct {
	ID              uint      `json:"id"`
	AppointmentTime time.Time `json:"appointmentTime"`
	Position        int       `json:"position"`
	Message         string    `json:"message"`
}

type AppointmentRescheduledDTO struct {
	ID              uint      `json:"id"`
	AppointmentTime time.Time `json:"appointmentTime"`
	Position        int       `json:"position"`
}

type QueuePositionDTO struct {
	ID       uint `json:"id"`
	Position int  `json:"position"`
}

type AvailabilityDTO struct {
	AvailableSlots []string `json:"availableSlots"`
}

type RemindersDTO struct {
	Date   string `json:"date"`
	Queued int    `json:"queued"`
}

type UserDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

type AuthDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token,omitempty"`
}

type AuditPageDTO[T any] struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Logs  []T   `json:"logs"`
}
