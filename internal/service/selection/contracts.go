package selection

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// SelectionRepository интерфейс репозитория выбора пользователя
type SelectionRepository interface {
	Upsert(ctx context.Context, s *domain.Selection) (*domain.Selection, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Selection, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

// CatalogService интерфейс каталога для проверки ID услуги и мастера
type CatalogService interface {
	GetService(ctx context.Context, serviceID string) (*domain.SalonService, error)
	GetStylist(ctx context.Context, stylistID string) (*domain.Stylist, error)
}

// MetricsCollector интерфейс учета сохранений (может быть nil)
type MetricsCollector interface {
	ObserveSelectionSaved()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
