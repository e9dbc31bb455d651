// Package notify sends customer emails about appointment lifecycle events.
// Delivery is best effort: callers never fail a request because of it.
package notify

import (
	"context"
	"fmt"
	"time"
)

type Details struct {
	AppointmentID   uint      `json:"appointmentId"`
	CustomerName    string    `json:"customerName"`
	BarberID        uint      `json:"barberId"`
	Service         string    `json:"service"`
	AppointmentTime time.Time `json:"appointmentTime"`
	AppointmentDate string    `json:"appointmentDate"`
	SlotTime        string    `json:"slotTime"`
	Position        int       `json:"position"`
}

type Notifier interface {
	SendConfirmation(ctx context.Context, email string, d Details) error
	SendCancellation(ctx context.Context, email string, d Details) error
	SendReminder(ctx context.Context, email string, d Details) error
}

type Kind string

const (
	KindConfirmation Kind = "confirmation"
	KindCancellation Kind = "cancellation"
	KindReminder     Kind = "reminder"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Compose renders the email for one lifecycle event.
func Compose(kind Kind, email string, d Details) Message {
	when := d.AppointmentDate + " " + d.SlotTime
	switch kind {
	case KindCancellation:
		return Message{
			To:      email,
			Subject: "Appointment Cancellation",
			Body: fmt.Sprintf("Hi %s, your %s appointment on %s has been canceled.",
				d.CustomerName, d.Service, when),
		}
	case KindReminder:
		return Message{
			To:      email,
			Subject: "Appointment Reminder",
			Body: fmt.Sprintf("Hi %s, reminder: your %s appointment is scheduled for %s.",
				d.CustomerName, d.Service, when),
		}
	default:
		return Message{
			To:      email,
			Subject: "Appointment Confirmation",
			Body: fmt.Sprintf("Hi %s, your %s appointment on %s is confirmed. You are number %d in line for that day.",
				d.CustomerName, d.Service, when, d.Position),
		}
	}
}
