package notify

import (
	"context"
	"log/slog"
	"sync"
)

type job struct {
	ctx   context.Context
	kind  Kind
	email string
	d     Details
}

// Dispatcher hands messages to a background worker so senders never delay a
// request. It satisfies Notifier and always reports success; delivery
// failures are logged.
type Dispatcher struct {
	next  Notifier
	log   *slog.Logger
	queue chan job
	done  chan struct{}

	// mu guards closed; senders hold it shared so Close never races a send.
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(next Notifier, log *slog.Logger, buffer int) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	if buffer <= 0 {
		buffer = 100
	}
	d := &Dispatcher{
		next:  next,
		log:   log,
		queue: make(chan job, buffer),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for j := range d.queue {
		var err error
		switch j.kind {
		case KindConfirmation:
			err = d.next.SendConfirmation(j.ctx, j.email, j.d)
		case KindCancellation:
			err = d.next.SendCancellation(j.ctx, j.email, j.d)
		case KindReminder:
			err = d.next.SendReminder(j.ctx, j.email, j.d)
		}
		if err != nil {
			d.log.Error("notification failed",
				"kind", j.kind,
				"appointment_id", j.d.AppointmentID,
				"err", err,
			)
		}
	}
}

func (d *Dispatcher) SendConfirmation(ctx context.Context, email string, det Details) error {
	d.enqueue(ctx, KindConfirmation, email, det)
	return nil
}

func (d *Dispatcher) SendCancellation(ctx context.Context, email string, det Details) error {
	d.enqueue(ctx, KindCancellation, email, det)
	return nil
}

func (d *Dispatcher) SendReminder(ctx context.Context, email string, det Details) error {
	d.enqueue(ctx, KindReminder, email, det)
	return nil
}

func (d *Dispatcher) enqueue(ctx context.Context, kind Kind, email string, det Details) {
	// The request context ends with the response.
	j := job{ctx: context.WithoutCancel(ctx), kind: kind, email: email, d: det}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.Warn("notification dispatcher closed, dropping", "kind", kind, "appointment_id", det.AppointmentID)
		return
	}
	select {
	case d.queue <- j:
	default:
		d.log.Warn("notification queue full, dropping", "kind", kind, "appointment_id", det.AppointmentID)
	}
}

// Close drains queued messages and stops the worker. Later sends are
// dropped; calling Close again is a no-op.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}

var (
	_ Notifier = (*Dispatcher)(nil)
	_ Notifier = (*SMTPNotifier)(nil)
	_ Notifier = (*LogNotifier)(nil)
)
