package domain

// SlotsConfig параметры сетки временных слотов
// Слоты статичны: не зависят от даты, мастера и существующих записей
type SlotsConfig struct {
	StartHour     int   // Первый час (включительно)
	EndHour       int   // Последний час (включительно)
	StepMinutes   int   // Шаг внутри часа, минуты 0, step, 2*step ... < 60
	ExcludedHours []int // Исключенные часы (например, обед)
}

// IsExcluded возвращает true, если час исключен из сетки
func (c SlotsConfig) IsExcluded(hour int) bool {
	for _, h := range c.ExcludedHours {
		if h == hour {
			return true
		}
	}
	return false
}

// SlotsPerHour количество слотов в одном часе
func (c SlotsConfig) SlotsPerHour() int {
	if c.StepMinutes <= 0 {
		return 0
	}
	return (59 / c.StepMinutes) + 1
}
