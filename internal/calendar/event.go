package calendar

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// EventInput данные для построения события записи
type EventInput struct {
	Date            domain.CalendarDate
	TimeLabel       string // "HH:MM"
	DurationMinutes int
	Title           string
	Details         string
	Location        string
	TZ              *time.Location // nil = time.Local
}

// BuildEvent собирает событие из даты, времени и длительности услуги.
// Возвращает nil, если дата или время не выбраны, время не разбирается
// или длительность неположительная: экспорт в этом случае становится no-op.
func BuildEvent(in EventInput) *domain.BookingEvent {
	if in.Date.IsZero() || in.TimeLabel == "" || in.DurationMinutes <= 0 {
		return nil
	}

	loc := in.TZ
	if loc == nil {
		loc = time.Local
	}

	start, err := types.TimeString(in.TimeLabel).On(in.Date.Year, in.Date.Month, in.Date.Day, loc)
	if err != nil {
		return nil
	}

	return &domain.BookingEvent{
		Start:    start,
		End:      start.Add(time.Duration(in.DurationMinutes) * time.Minute),
		Title:    in.Title,
		Details:  in.Details,
		Location: in.Location,
	}
}
