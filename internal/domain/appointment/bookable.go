package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-queue/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

// CheckBookable accepts w only when it starts one of the barber's slots on a
// day the barber works. An empty day list means every day.
func CheckBookable(b *models.Barber, w When) error {
	day, err := time.Parse(schedule.DateLayout, w.Date)
	if err != nil {
		return ErrSlotUnavailable()
	}
	if len(b.AvailableDays) > 0 && !schedule.WorksOn(b.AvailableDays, day) {
		return ErrSlotUnavailable()
	}

	wh := b.WorkingHours
	slots, err := schedule.GenerateSlots(w.Date, wh.Start, wh.End, wh.SlotDuration)
	if err != nil {
		return err
	}
	for _, s := range slots {
		if s == w.Slot {
			return nil
		}
	}
	return ErrSlotUnavailable()
}

func ErrSlotUnavailable() error {
	return httperr.Validation("slot_unavailable", "The barber has no slot at this time.")
}
