package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOverflow = errors.New("time string: result is outside of the day")
)

// TimeString время суток в формате "HH:MM" (без даты и часового пояса)
type TimeString string

// NewTimeString создает TimeString из часов и минут переданного времени
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", ErrInvalidTimeString
	}
	return NewTimeString(t), nil
}

// NewTimeStringFromParts собирает TimeString из часа и минуты с дополнением нулями
func NewTimeStringFromParts(hour, minute int) (TimeString, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: hour=%d, minute=%d", ErrInvalidTimeString, hour, minute)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// Hour возвращает час (0-23), -1 для некорректного значения
func (ts TimeString) Hour() int {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return -1
	}
	return t.Hour()
}

// Minute возвращает минуту (0-59), -1 для некорректного значения
func (ts TimeString) Minute() int {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return -1
	}
	return t.Minute()
}

// MinutesSinceMidnight возвращает количество минут от начала суток
func (ts TimeString) MinutesSinceMidnight() (int, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, ErrInvalidTimeString
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsValid проверяет формат HH:MM
func (ts TimeString) IsValid() bool {
	_, err := time.Parse(timeLayout, string(ts))
	return err == nil
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := ts.MinutesSinceMidnight()
	b, errB := other.MinutesSinceMidnight()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(ts)
}

// AddMinutes прибавляет минуты, результат должен остаться в пределах тех же суток
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := ts.MinutesSinceMidnight()
	if err != nil {
		return "", err
	}

	total := current + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s%+d min", ErrTimeOverflow, ts, minutes)
	}

	return NewTimeStringFromParts(total/60, total%60)
}

// On возвращает момент времени в указанную дату и часовой пояс
func (ts TimeString) On(year int, month time.Month, day int, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return time.Time{}, ErrInvalidTimeString
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, loc), nil
}

// String реализует fmt.Stringer
func (ts TimeString) String() string {
	return string(ts)
}

// Value реализует driver.Valuer, пустое значение сохраняется как NULL
func (ts TimeString) Value() (driver.Value, error) {
	if ts == "" {
		return nil, nil
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		*ts = TimeString(v)
		return nil
	case []byte:
		*ts = TimeString(v)
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}
