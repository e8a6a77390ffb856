package export_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга с указанным ID отсутствует в каталоге
	ErrServiceNotFound = errors.New("export_booking: service not found")

	// ErrStylistNotFound возвращается, когда мастер с указанным ID отсутствует в каталоге
	ErrStylistNotFound = errors.New("export_booking: stylist not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("export_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("export_booking: internal error")
)
