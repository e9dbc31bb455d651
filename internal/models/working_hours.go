package models

// WorkingHours is a barber's daily shift. Start and End are HH:MM wall-clock
// values in the salon timezone.
type WorkingHours struct {
	Start        string `gorm:"size:5;not null;default:'09:00'" json:"start"`
	End          string `gorm:"size:5;not null;default:'17:00'" json:"end"`
	SlotDuration int    `gorm:"not null;default:30" json:"slotDuration"`
}

func DefaultWorkingHours() WorkingHours {
	return WorkingHours{
		Start:        "09:00",
		End:          "17:00",
		SlotDuration: 30,
	}
}

func DefaultAvailableDays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
}
