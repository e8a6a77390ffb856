package get_time_slots

import "github.com/m04kA/SMC-SalonBooking/pkg/types"

// Response модель ответа со списком слотов
// Слоты одинаковы для любой даты: занятость и расписание мастеров не учитываются
type Response struct {
	StartHour     int
	EndHour       int
	StepMinutes   int
	ExcludedHours []int
	Slots         []types.TimeString
}
