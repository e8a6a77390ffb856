package selection

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда для сессии нет сохраненного выбора
	ErrSelectionNotFound = errors.New("selection not found")

	// ErrServiceNotFound возвращается, когда услуга отсутствует в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrStylistNotFound возвращается, когда мастер отсутствует в каталоге
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
