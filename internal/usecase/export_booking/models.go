package export_booking

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса на экспорт записи
// Пустые поля допустимы: неполный выбор дает пустой результат, а не ошибку
type Request struct {
	ServiceID string              // ID услуги из каталога
	StylistID string              // ID мастера (опционально)
	Date      domain.CalendarDate // Дата записи
	StartTime types.TimeString    // Время начала "HH:MM"
	Notes     string              // Заметки клиента (опционально)
}

// ICSResponse модель ответа с ICS файлом
type ICSResponse struct {
	Empty       bool // true = событие не построено, файла нет
	Filename    string
	ContentType string
	Content     string
}

// LinkResponse модель ответа со ссылкой календаря-провайдера
type LinkResponse struct {
	Empty bool   // true = ссылка-заглушка
	URL   string // Для пустого результата "#"
}
