package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCalendarDate возвращается при разборе даты не в формате YYYY-MM-DD
var ErrInvalidCalendarDate = errors.New("invalid calendar date, expected YYYY-MM-DD")

// CalendarDate календарная дата без времени и часового пояса
// Нулевое значение означает "дата не выбрана"
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate возвращает дату, нормализуя выход за границы месяца так же, как time.Date
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf возвращает календарную дату момента t в его часовом поясе
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ParseCalendarDate разбирает строку YYYY-MM-DD
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidCalendarDate, s)
	}
	return DateOf(t), nil
}

// IsZero возвращает true, если дата не задана
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// In возвращает полночь этой даты в указанном часовом поясе
func (d CalendarDate) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Weekday день недели (0=воскресенье)
func (d CalendarDate) Weekday() time.Weekday {
	return d.In(time.UTC).Weekday()
}

// Equal сравнивает две даты
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// Before возвращает true, если d строго раньше other
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// IsToday сравнивает дату с календарной датой now (в часовом поясе now)
func (d CalendarDate) IsToday(now time.Time) bool {
	return d.Equal(DateOf(now))
}

// IsPast возвращает true для дат раньше сегодняшней
func (d CalendarDate) IsPast(now time.Time) bool {
	return d.Before(DateOf(now))
}

// String форматирует дату как YYYY-MM-DD
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON сериализует дату как "YYYY-MM-DD", нулевая дата становится null
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON принимает "YYYY-MM-DD", пустую строку или null
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = CalendarDate{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCalendarDate, err)
	}
	if s == "" {
		*d = CalendarDate{}
		return nil
	}

	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
