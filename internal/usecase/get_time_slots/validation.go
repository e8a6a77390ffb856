package get_time_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateConfig проверяет конфигурацию сетки до запуска сервиса
func validateConfig(cfg domain.SlotsConfig) error {
	if cfg.StartHour < 0 || cfg.StartHour > 23 || cfg.EndHour < 0 || cfg.EndHour > 23 {
		return fmt.Errorf("%w: hours must be within 0..23", ErrInvalidConfig)
	}

	if cfg.StartHour > cfg.EndHour {
		return fmt.Errorf("%w: start hour %d is after end hour %d", ErrInvalidConfig, cfg.StartHour, cfg.EndHour)
	}

	if cfg.StepMinutes <= 0 || cfg.StepMinutes > 60 {
		return fmt.Errorf("%w: step must be within 1..60 minutes", ErrInvalidConfig)
	}

	return nil
}
