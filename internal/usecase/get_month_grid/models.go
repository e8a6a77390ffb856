package get_month_grid

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// Request модель запроса сетки месяца
type Request struct {
	Year   int // Год; 0 = текущий месяц
	Month  int // Месяц, 0 = январь (вне 0..11 нормализуется)
	Offset int // Сдвиг в месяцах от (Year, Month) для навигации
}

// Response модель ответа с сеткой месяца
type Response struct {
	Year           int
	Month          int // 0 = январь
	MonthName      string
	LeadingBlanks  int
	DaysInMonth    int
	TrailingBlanks int // Для отрисовки полной последней недели, в Cells не входят
	Today          domain.CalendarDate
	Prev           MonthRef
	Next           MonthRef
	Cells          []*Day // nil = пустая ячейка перед первым числом
}

// MonthRef ссылка на соседний месяц
type MonthRef struct {
	Year  int
	Month int
}

// Day ячейка сетки с флагами для отрисовки
type Day struct {
	Date    domain.CalendarDate
	IsToday bool
	IsPast  bool
}
