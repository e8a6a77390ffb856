package domain

// MonthGrid ячейки одного месяца для сетки из 7 колонок
// Первые LeadingBlanks ячеек пустые (nil), далее по одной дате на каждый день месяца.
// Хвостовые пустые ячейки не добавляются: это забота отрисовки.
type MonthGrid struct {
	Year          int
	Month         int // 0 = январь
	LeadingBlanks int
	DaysInMonth   int
	Cells         []*CalendarDate
}

// Len количество ячеек (LeadingBlanks + DaysInMonth)
func (g MonthGrid) Len() int {
	return len(g.Cells)
}

// TrailingBlanks сколько пустых ячеек нужно дорисовать до полной недели
func (g MonthGrid) TrailingBlanks() int {
	rest := len(g.Cells) % DaysPerWeek
	if rest == 0 {
		return 0
	}
	return DaysPerWeek - rest
}

// Weeks количество строк в сетке из 7 колонок
func (g MonthGrid) Weeks() int {
	return (len(g.Cells) + g.TrailingBlanks()) / DaysPerWeek
}
