package get_time_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/calendar"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// UseCase use case для получения сетки временных слотов
type UseCase struct {
	config domain.SlotsConfig
	logger Logger
}

// NewUseCase создает новый экземпляр use case, проверяя конфигурацию сетки
func NewUseCase(config domain.SlotsConfig, logger Logger) (*UseCase, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return &UseCase{
		config: config,
		logger: logger,
	}, nil
}

// Execute выполняет use case получения слотов
// Список пересчитывается на каждый вызов: для одной конфигурации он всегда одинаковый
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	slots, err := calendar.GenerateSlotsFor(uc.config)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetTimeSlots: generated %d slots (%02d-%02d, step=%d, excluded=%v)",
		len(slots), uc.config.StartHour, uc.config.EndHour, uc.config.StepMinutes, uc.config.ExcludedHours)

	excluded := make([]int, len(uc.config.ExcludedHours))
	copy(excluded, uc.config.ExcludedHours)

	return &Response{
		StartHour:     uc.config.StartHour,
		EndHour:       uc.config.EndHour,
		StepMinutes:   uc.config.StepMinutes,
		ExcludedHours: excluded,
		Slots:         slots,
	}, nil
}
