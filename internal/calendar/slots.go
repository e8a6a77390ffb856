package calendar

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// GenerateSlots возвращает метки "HH:MM" для каждого часа из [startHour, endHourInclusive]
// и каждой минуты сетки 0, step, 2*step ... < 60, пропуская часы из excludedHours.
// Результат упорядочен по возрастанию и не содержит повторов.
func GenerateSlots(startHour, endHourInclusive, minuteStep int, excludedHours []int) ([]types.TimeString, error) {
	if startHour < 0 || startHour > 23 || endHourInclusive < 0 || endHourInclusive > 23 {
		return nil, fmt.Errorf("%w: hours must be within 0..23, got %d..%d",
			ErrInvalidSlotConfig, startHour, endHourInclusive)
	}
	if minuteStep <= 0 || minuteStep > 60 {
		return nil, fmt.Errorf("%w: minute step must be within 1..60, got %d", ErrInvalidSlotConfig, minuteStep)
	}

	excluded := make(map[int]struct{}, len(excludedHours))
	for _, h := range excludedHours {
		excluded[h] = struct{}{}
	}

	slots := make([]types.TimeString, 0)
	for hour := startHour; hour <= endHourInclusive; hour++ {
		if _, skip := excluded[hour]; skip {
			continue
		}
		for minute := 0; minute < 60; minute += minuteStep {
			label, err := types.NewTimeStringFromParts(hour, minute)
			if err != nil {
				return nil, err
			}
			slots = append(slots, label)
		}
	}

	return slots, nil
}

// GenerateSlotsFor генерирует слоты по конфигурации
func GenerateSlotsFor(cfg domain.SlotsConfig) ([]types.TimeString, error) {
	return GenerateSlots(cfg.StartHour, cfg.EndHour, cfg.StepMinutes, cfg.ExcludedHours)
}
