package export_booking

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// CatalogService интерфейс каталога услуг и мастеров
type CatalogService interface {
	GetService(ctx context.Context, serviceID string) (*domain.SalonService, error)
	GetStylist(ctx context.Context, stylistID string) (*domain.Stylist, error)
}

// Exporter интерфейс сериализации события в артефакты календаря
type Exporter interface {
	BuildICS(ev *domain.BookingEvent) string
	BuildProviderLink(ev *domain.BookingEvent) string
}

// MetricsCollector интерфейс учета экспорта (может быть nil)
type MetricsCollector interface {
	ObserveExport(kind, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
