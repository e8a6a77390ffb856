package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Calendar export constants
const (
	ICSFilename    = "booking.ics"
	ICSContentType = "text/calendar; charset=utf-8"
	// InertLink ссылка-заглушка, когда событие построить нельзя
	InertLink = "#"
)

// Business validation constants
const (
	MaxNotesLength        = 500
	MaxCustomerNameLength = 200
	MaxEmailLength        = 254
	MaxPhoneLength        = 32
	MaxSessionIDLength    = 128
	DaysPerWeek           = 7
)

// DefaultSlotsConfig стандартная сетка слотов салона: 10:00-19:40 шагом 20 минут, без обеденного часа
var DefaultSlotsConfig = SlotsConfig{
	StartHour:     10,
	EndHour:       19,
	StepMinutes:   20,
	ExcludedHours: []int{13},
}
