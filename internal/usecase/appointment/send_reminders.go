package appointment

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/salon-queue/internal/audit"
	domain "github.com/BruksfildServices01/salon-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-queue/internal/notify"
)

type SendReminders struct {
	list     *ListAppointmentsByDate
	notifier notify.Notifier
	audit    *audit.Dispatcher
}

func NewSendReminders(
	repo domain.Repository,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
) *SendReminders {
	return &SendReminders{
		list:     NewListAppointmentsByDate(repo),
		notifier: notifier,
		audit:    audit,
	}
}

// Execute queues a reminder for every pending appointment of date and
// returns how many were handed to the notifier.
func (uc *SendReminders) Execute(ctx context.Context, date string) (int, error) {
	apps, err := uc.list.Execute(ctx, date)
	if err != nil {
		return 0, err
	}
	if uc.notifier == nil {
		return 0, nil
	}

	sent := 0
	for i := range apps {
		ap := &apps[i]
		if !ap.IsActive() {
			continue
		}
		if err := uc.notifier.SendReminder(ctx, ap.CustomerEmail, details(ap)); err != nil {
			slog.WarnContext(ctx, "reminder not sent", "appointment_id", ap.ID, "err", err)
			continue
		}
		sent++
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_reminders_sent",
		Entity:   "appointment",
		Metadata: map[string]any{"date": date, "count": sent},
	})

	return sent, nil
}
