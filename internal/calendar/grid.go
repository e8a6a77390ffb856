package calendar

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Месяцы в этом пакете нумеруются с нуля (0 = январь, 11 = декабрь),
// выход за диапазон нормализуется через арифметику time.Date.

// monthStart возвращает первое число месяца в UTC
func monthStart(year, month int) time.Time {
	return time.Date(year, time.January+time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// NormalizeMonth приводит пару (год, месяц) к диапазону месяцев 0..11
// month = -1 дает декабрь предыдущего года, month = 12 дает январь следующего
func NormalizeMonth(year, month int) (int, int) {
	t := monthStart(year, month)
	return t.Year(), int(t.Month()) - 1
}

// ShiftMonth сдвигает месяц на delta (навигация "назад"/"вперед")
func ShiftMonth(year, month, delta int) (int, int) {
	return NormalizeMonth(year, month+delta)
}

// DaysInMonth количество дней в месяце: "нулевой" день следующего месяца
// равен последнему дню текущего
func DaysInMonth(year, month int) int {
	return time.Date(year, time.January+time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartWeekday день недели первого числа месяца (0 = воскресенье .. 6 = суббота)
func StartWeekday(year, month int) int {
	return int(monthStart(year, month).Weekday())
}

// BuildMonthGrid строит сетку месяца: StartWeekday пустых ячеек,
// затем по одной дате на каждый день 1..DaysInMonth
func BuildMonthGrid(year, month int) domain.MonthGrid {
	year, month = NormalizeMonth(year, month)

	lead := StartWeekday(year, month)
	total := DaysInMonth(year, month)

	cells := make([]*domain.CalendarDate, lead, lead+total)
	for day := 1; day <= total; day++ {
		d := domain.CalendarDate{Year: year, Month: time.January + time.Month(month), Day: day}
		cells = append(cells, &d)
	}

	return domain.MonthGrid{
		Year:          year,
		Month:         month,
		LeadingBlanks: lead,
		DaysInMonth:   total,
		Cells:         cells,
	}
}
