package export_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Отсутствие даты, времени или услуги не ошибка: это неполный выбор
func validateRequest(req *Request) error {
	if req.StartTime != "" && !req.StartTime.IsValid() {
		return fmt.Errorf("%w: start time must be HH:MM", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// isIncomplete возвращает true, если для события не хватает данных
func isIncomplete(req *Request) bool {
	return req.ServiceID == "" || req.Date.IsZero() || req.StartTime == ""
}
