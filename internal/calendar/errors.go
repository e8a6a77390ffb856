package calendar

import "errors"

var (
	// ErrInvalidSlotConfig возвращается при некорректных параметрах сетки слотов
	ErrInvalidSlotConfig = errors.New("calendar: invalid slot configuration")
)
