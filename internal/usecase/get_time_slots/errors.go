package get_time_slots

import "errors"

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации сетки слотов
	ErrInvalidConfig = errors.New("get_time_slots: invalid slots configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_time_slots: internal error")
)
