package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// BookingEvent событие записи для экспорта в календарь
// Вычисляется по требованию из выбора пользователя и нигде не хранится
type BookingEvent struct {
	Start    time.Time
	End      time.Time
	Title    string
	Details  string
	Location string
}

// Duration длительность события
func (e *BookingEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Customer контактные данные клиента
type Customer struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// Selection текущее состояние выбора пользователя в рамках сессии
// Явная структура состояния вместо глобального состояния интерфейса
type Selection struct {
	SessionID string
	ServiceID string
	StylistID string // пустая строка = мастер не выбран
	Date      CalendarDate
	StartTime types.TimeString
	Customer  Customer
	UpdatedAt time.Time
}

// HasDateTime возвращает true, если выбраны и дата, и время
func (s *Selection) HasDateTime() bool {
	return !s.Date.IsZero() && s.StartTime != ""
}

// IsComplete возвращает true, если выбора достаточно для экспорта события
func (s *Selection) IsComplete() bool {
	return s.ServiceID != "" && s.HasDateTime()
}

// HasStylist возвращает true, если мастер выбран
func (s *Selection) HasStylist() bool {
	return s.StylistID != ""
}
