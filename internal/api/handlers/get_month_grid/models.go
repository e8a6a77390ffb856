package get_month_grid

import (
	"strconv"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getMonthGrid "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_month_grid"
)

// MonthGridResponse HTTP response model
type MonthGridResponse struct {
	Year           int                 `json:"year"`
	Month          int                 `json:"month"` // 0 = январь
	MonthName      string              `json:"monthName"`
	LeadingBlanks  int                 `json:"leadingBlanks"`
	DaysInMonth    int                 `json:"daysInMonth"`
	TrailingBlanks int                 `json:"trailingBlanks"`
	Today          domain.CalendarDate `json:"today"`
	Prev           MonthRef            `json:"prev"`
	Next           MonthRef            `json:"next"`
	Cells          []*DayCell          `json:"cells"` // null = пустая ячейка
}

// MonthRef соседний месяц для навигации
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// DayCell день сетки
type DayCell struct {
	Date    domain.CalendarDate `json:"date"`
	Day     int                 `json:"day"`
	IsToday bool                `json:"isToday"`
	IsPast  bool                `json:"isPast"`
}

// ToUseCaseRequest создает запрос use case из query параметров
// Все параметры опциональны, пустое значение = 0
func ToUseCaseRequest(yearStr, monthStr, offsetStr string) (*getMonthGrid.Request, error) {
	year, err := atoiOrZero(yearStr)
	if err != nil {
		return nil, err
	}
	month, err := atoiOrZero(monthStr)
	if err != nil {
		return nil, err
	}
	offset, err := atoiOrZero(offsetStr)
	if err != nil {
		return nil, err
	}

	return &getMonthGrid.Request{
		Year:   year,
		Month:  month,
		Offset: offset,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthGrid.Response) *MonthGridResponse {
	cells := make([]*DayCell, len(resp.Cells))
	for i, c := range resp.Cells {
		if c == nil {
			continue
		}
		cells[i] = &DayCell{
			Date:    c.Date,
			Day:     c.Date.Day,
			IsToday: c.IsToday,
			IsPast:  c.IsPast,
		}
	}

	return &MonthGridResponse{
		Year:           resp.Year,
		Month:          resp.Month,
		MonthName:      resp.MonthName,
		LeadingBlanks:  resp.LeadingBlanks,
		DaysInMonth:    resp.DaysInMonth,
		TrailingBlanks: resp.TrailingBlanks,
		Today:          resp.Today,
		Prev:           MonthRef{Year: resp.Prev.Year, Month: resp.Prev.Month},
		Next:           MonthRef{Year: resp.Next.Year, Month: resp.Next.Month},
		Cells:          cells,
	}
}

func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
