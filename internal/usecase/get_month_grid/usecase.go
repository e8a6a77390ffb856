package get_month_grid

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/calendar"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// UseCase use case для построения сетки месяца календаря
type UseCase struct {
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location часовой пояс салона: в нем определяется "сегодня"
func NewUseCase(location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case построения сетки месяца
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthGrid: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.location)
	today := domain.DateOf(now)

	year, month := req.Year, req.Month
	if year == 0 {
		year, month = today.Year, int(today.Month)-1
	}

	year, month = calendar.ShiftMonth(year, month, req.Offset)
	if err := validateNormalized(year); err != nil {
		uc.logger.Warn("GetMonthGrid: validation failed: %v", err)
		return nil, err
	}

	grid := calendar.BuildMonthGrid(year, month)

	cells := make([]*Day, len(grid.Cells))
	for i, date := range grid.Cells {
		if date == nil {
			continue
		}
		cells[i] = &Day{
			Date:    *date,
			IsToday: date.IsToday(now),
			IsPast:  date.IsPast(now),
		}
	}

	prevYear, prevMonth := calendar.ShiftMonth(year, month, -1)
	nextYear, nextMonth := calendar.ShiftMonth(year, month, 1)

	uc.logger.Info("GetMonthGrid: built grid year=%d, month=%d, cells=%d", grid.Year, grid.Month, grid.Len())

	return &Response{
		Year:           grid.Year,
		Month:          grid.Month,
		MonthName:      (time.January + time.Month(grid.Month)).String(),
		LeadingBlanks:  grid.LeadingBlanks,
		DaysInMonth:    grid.DaysInMonth,
		TrailingBlanks: grid.TrailingBlanks(),
		Today:          today,
		Prev:           MonthRef{Year: prevYear, Month: prevMonth},
		Next:           MonthRef{Year: nextYear, Month: nextMonth},
		Cells:          cells,
	}, nil
}
