package get_time_slots

import (
	getTimeSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_time_slots"
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	StartHour     int      `json:"startHour"`
	EndHour       int      `json:"endHour"`
	StepMinutes   int      `json:"stepMinutes"`
	ExcludedHours []int    `json:"excludedHours"`
	Slots         []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.String()
	}

	excluded := resp.ExcludedHours
	if excluded == nil {
		excluded = []int{}
	}

	return &TimeSlotsResponse{
		StartHour:     resp.StartHour,
		EndHour:       resp.EndHour,
		StepMinutes:   resp.StepMinutes,
		ExcludedHours: excluded,
		Slots:         slots,
	}
}
