package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrStylistNotFound возвращается, когда мастер не найден
	ErrStylistNotFound = errors.New("catalog: stylist not found")
)
