package calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const (
	icsTimestampLayout = "20060102T150405Z"

	// У ссылки провайдера секунды всегда "00"
	providerTimestampLayout = "20060102T1504" + "00Z"

	DefaultProductID   = "-//Salon Demo//EN"
	DefaultProviderURL = "https://calendar.google.com/calendar/render"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Exporter сериализует событие записи в ICS и в ссылку календаря-провайдера
type Exporter struct {
	productID    string
	providerURL  string
	timeProvider TimeProvider
}

// NewExporter создает экспортер. Пустые значения заменяются значениями по умолчанию
func NewExporter(productID, providerURL string) *Exporter {
	if productID == "" {
		productID = DefaultProductID
	}
	if providerURL == "" {
		providerURL = DefaultProviderURL
	}

	return &Exporter{
		productID:    productID,
		providerURL:  providerURL,
		timeProvider: &RealTimeProvider{},
	}
}

// WithTimeProvider подменяет источник времени для DTSTAMP
func (e *Exporter) WithTimeProvider(tp TimeProvider) *Exporter {
	e.timeProvider = tp
	return e
}

// FormatICSTimestamp форматирует момент в UTC как YYYYMMDDTHHMMSSZ
func FormatICSTimestamp(t time.Time) string {
	return t.UTC().Format(icsTimestampLayout)
}

// formatProviderTimestamp как FormatICSTimestamp, но с точностью до минуты
func formatProviderTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Minute).Format(providerTimestampLayout)
}

// EventUID детерминированный UID события (UUIDv5 от значений события)
// Повторный экспорт той же записи дает тот же UID, и календарь обновляет событие, а не дублирует
func EventUID(ev *domain.BookingEvent) string {
	name := strings.Join([]string{
		FormatICSTimestamp(ev.Start),
		FormatICSTimestamp(ev.End),
		ev.Title,
		ev.Location,
	}, "|")
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// BuildICS возвращает iCalendar документ с одним VEVENT (строки через CRLF).
// Для nil события возвращается пустая строка.
func (e *Exporter) BuildICS(ev *domain.BookingEvent) string {
	if ev == nil {
		return ""
	}

	cal := ics.NewCalendar()
	cal.SetVersion("2.0")
	cal.SetProductId(e.productID)

	vevent := cal.AddEvent(EventUID(ev))
	vevent.SetDtStampTime(e.timeProvider.Now())
	vevent.SetStartAt(ev.Start)
	vevent.SetEndAt(ev.End)
	vevent.SetSummary(ev.Title)
	// Переводы строк экранируются библиотекой как литеральные \n
	vevent.SetDescription(ev.Details)
	vevent.SetLocation(ev.Location)

	return cal.Serialize(ics.WithNewLineWindows)
}

// BuildProviderLink возвращает ссылку "добавить событие" календаря-провайдера.
// Для nil события возвращается неактивная заглушка "#".
func (e *Exporter) BuildProviderLink(ev *domain.BookingEvent) string {
	if ev == nil {
		return domain.InertLink
	}

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", ev.Title)
	params.Set("details", ev.Details)
	params.Set("location", ev.Location)
	params.Set("dates", fmt.Sprintf("%s/%s", formatProviderTimestamp(ev.Start), formatProviderTimestamp(ev.End)))

	return e.providerURL + "?" + params.Encode()
}
