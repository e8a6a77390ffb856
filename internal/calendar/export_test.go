package calendar

import (
	"net/url"
	"strings"
	"testing"
	"time"

	goical "github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

// Бухарест в мае: UTC+3
var eest = time.FixedZone("EEST", 3*60*60)

func sampleInput() EventInput {
	return EventInput{
		Date:            domain.CalendarDate{Year: 2024, Month: time.May, Day: 1},
		TimeLabel:       "10:00",
		DurationMinutes: 45,
		Title:           "Salon: Haircut",
		Details:         "Stylist: Ana Pop. Short on the sides",
		Location:        "Salon Downtown, Timișoara",
		TZ:              eest,
	}
}

func TestBuildEvent(t *testing.T) {
	ev := BuildEvent(sampleInput())
	require.NotNil(t, ev)

	assert.Equal(t, time.Date(2024, time.May, 1, 10, 0, 0, 0, eest), ev.Start)
	assert.Equal(t, time.Date(2024, time.May, 1, 10, 45, 0, 0, eest), ev.End)
	assert.Equal(t, 45*time.Minute, ev.Duration())
	assert.Equal(t, "Salon: Haircut", ev.Title)
	assert.Equal(t, "Salon Downtown, Timișoara", ev.Location)
}

func TestBuildEvent_DefaultsToLocalTime(t *testing.T) {
	in := sampleInput()
	in.TZ = nil

	ev := BuildEvent(in)
	require.NotNil(t, ev)
	assert.Equal(t, time.Date(2024, time.May, 1, 10, 0, 0, 0, time.Local), ev.Start)
}

func TestBuildEvent_CrossesMidnight(t *testing.T) {
	in := sampleInput()
	in.TimeLabel = "23:40"
	in.DurationMinutes = 90

	ev := BuildEvent(in)
	require.NotNil(t, ev)
	assert.Equal(t, time.Date(2024, time.May, 2, 1, 10, 0, 0, eest), ev.End)
}

func TestBuildEvent_Incomplete(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *EventInput)
	}{
		{name: "нет даты", mutate: func(in *EventInput) { in.Date = domain.CalendarDate{} }},
		{name: "нет времени", mutate: func(in *EventInput) { in.TimeLabel = "" }},
		{name: "время не разбирается", mutate: func(in *EventInput) { in.TimeLabel = "ten" }},
		{name: "нет длительности", mutate: func(in *EventInput) { in.DurationMinutes = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sampleInput()
			tt.mutate(&in)
			assert.Nil(t, BuildEvent(in))
		})
	}
}

func TestFormatICSTimestamp(t *testing.T) {
	got := FormatICSTimestamp(time.Date(2024, time.May, 1, 10, 0, 5, 0, eest))

	assert.Equal(t, "20240501T070005Z", got)
	assert.Len(t, got, 16)
	assert.True(t, strings.HasSuffix(got, "Z"))

	assert.Equal(t, "20231231T220000Z", FormatICSTimestamp(time.Date(2024, time.January, 1, 1, 0, 0, 0, eest)))
}

func TestExporter_BuildICS(t *testing.T) {
	stamp := time.Date(2024, time.April, 20, 8, 30, 0, 0, time.UTC)
	exporter := NewExporter("-//Salon Demo//EN", "").WithTimeProvider(fixedTimeProvider{now: stamp})

	in := sampleInput()
	in.Details = "Stylist: Ana Pop.\nBring a photo"
	ev := BuildEvent(in)
	require.NotNil(t, ev)

	out := exporter.BuildICS(ev)

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.Contains(t, out, "VERSION:2.0\r\n")
	assert.Contains(t, out, "PRODID:-//Salon Demo//EN\r\n")
	assert.Contains(t, out, "BEGIN:VEVENT\r\n")
	assert.Contains(t, out, "DTSTAMP:20240420T083000Z\r\n")
	assert.Contains(t, out, "DTSTART:20240501T070000Z\r\n")
	assert.Contains(t, out, "DTEND:20240501T074500Z\r\n")
	assert.Contains(t, out, "SUMMARY:Salon: Haircut\r\n")
	assert.Contains(t, out, `DESCRIPTION:Stylist: Ana Pop.\nBring a photo`)
	assert.Contains(t, out, "END:VEVENT\r\n")
	assert.Contains(t, out, "END:VCALENDAR")
	assert.Equal(t, 1, strings.Count(out, "BEGIN:VEVENT"))
	assert.Equal(t, strings.Count(out, "\n"), strings.Count(out, "\r\n"), "все строки завершаются CRLF")

	begin := strings.Index(out, "BEGIN:VEVENT")
	start := strings.Index(out, "DTSTART:")
	end := strings.Index(out, "DTEND:")
	assert.True(t, begin < start && start < end, "DTSTART goes before DTEND inside VEVENT")
}

// Документ должен читаться независимым парсером так же, как его прочтет календарный клиент
func TestExporter_BuildICS_Importable(t *testing.T) {
	exporter := NewExporter("", "")

	ev := BuildEvent(sampleInput())
	require.NotNil(t, ev)

	cal, err := goical.NewDecoder(strings.NewReader(exporter.BuildICS(ev))).Decode()
	require.NoError(t, err)

	prodID, err := cal.Props.Text(goical.PropProductID)
	require.NoError(t, err)
	assert.Equal(t, DefaultProductID, prodID)

	events := cal.Events()
	require.Len(t, events, 1)
	vevent := events[0]

	start, err := vevent.DateTimeStart(time.UTC)
	require.NoError(t, err)
	end, err := vevent.DateTimeEnd(time.UTC)
	require.NoError(t, err)

	assert.True(t, start.Equal(ev.Start))
	assert.Equal(t, 45*time.Minute, end.Sub(start))

	summary, err := vevent.Props.Text(goical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Salon: Haircut", summary)

	location, err := vevent.Props.Text(goical.PropLocation)
	require.NoError(t, err)
	assert.Equal(t, "Salon Downtown, Timișoara", location)

	uid, err := vevent.Props.Text(goical.PropUID)
	require.NoError(t, err)
	assert.Equal(t, EventUID(ev), uid)
}

func TestExporter_BuildICS_Idempotent(t *testing.T) {
	ev := BuildEvent(sampleInput())
	require.NotNil(t, ev)

	first := NewExporter("", "").
		WithTimeProvider(fixedTimeProvider{now: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)}).
		BuildICS(ev)
	second := NewExporter("", "").
		WithTimeProvider(fixedTimeProvider{now: time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)}).
		BuildICS(ev)

	assert.NotEqual(t, first, second, "DTSTAMP differs")
	assert.Equal(t, withoutStamp(first), withoutStamp(second))
}

func withoutStamp(doc string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(doc, "\r\n") {
		if strings.HasPrefix(line, "DTSTAMP:") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func TestExporter_BuildICS_LineEndings(t *testing.T) {
	ev := BuildEvent(sampleInput())
	require.NotNil(t, ev)

	out := NewExporter("", "").BuildICS(ev)

	crlf := strings.Count(out, "\r\n")
	assert.Greater(t, crlf, 10)
	assert.Equal(t, crlf, strings.Count(out, "\n"), "голый LF недопустим")
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
}

func TestExporter_BuildICS_NilEvent(t *testing.T) {
	assert.Equal(t, "", NewExporter("", "").BuildICS(nil))
}

func TestExporter_BuildProviderLink(t *testing.T) {
	in := sampleInput()
	in.TimeLabel = "10:20"
	ev := BuildEvent(in)
	require.NotNil(t, ev)

	// секунды в ссылке всегда 00
	ev.Start = ev.Start.Add(37 * time.Second)

	link := NewExporter("", "").BuildProviderLink(ev)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "calendar.google.com", u.Host)
	assert.Equal(t, "/calendar/render", u.Path)

	q := u.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "Salon: Haircut", q.Get("text"))
	assert.Equal(t, "Stylist: Ana Pop. Short on the sides", q.Get("details"))
	assert.Equal(t, "Salon Downtown, Timișoara", q.Get("location"))
	assert.Equal(t, "20240501T072000Z/20240501T080500Z", q.Get("dates"))

	assert.NotContains(t, link, " ", "query must be URL-encoded")
}

func TestExporter_BuildProviderLink_NilEvent(t *testing.T) {
	assert.Equal(t, "#", NewExporter("", "").BuildProviderLink(nil))
}

func TestEventUID_Deterministic(t *testing.T) {
	a := BuildEvent(sampleInput())
	b := BuildEvent(sampleInput())
	require.NotNil(t, a)
	require.NotNil(t, b)

	assert.Equal(t, EventUID(a), EventUID(b))

	in := sampleInput()
	in.TimeLabel = "11:00"
	c := BuildEvent(in)
	require.NotNil(t, c)
	assert.NotEqual(t, EventUID(a), EventUID(c))
}
