package export_ics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func post(body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/export/ics", strings.NewReader(body))
	newHandler().Handle(rec, req)
	return rec
}

func TestHandle_Exports(t *testing.T) {
	rec := post(`{"serviceId":"cut","stylistId":"ana","date":"2024-05-01","time":"10:00","notes":"Short"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ICSContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="booking.ics"`, rec.Header().Get("Content-Disposition"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR"))
	assert.Contains(t, body, "DTSTART:20240501T100000Z")
	assert.Contains(t, body, "DTEND:20240501T104500Z")
	assert.Contains(t, body, "SUMMARY:Salon: Haircut")
}

func TestHandle_IncompleteSelection(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"serviceId":"cut","date":"2024-05-01"}`,
		`{"serviceId":"cut","time":"10:00"}`,
		`{"date":"2024-05-01","time":"10:00"}`,
	} {
		rec := post(body)
		assert.Equal(t, http.StatusNoContent, rec.Code, body)
		assert.Empty(t, rec.Body.String(), body)
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "битый JSON", body: `{"serviceId":`, wantStatus: http.StatusBadRequest},
		{name: "неизвестное поле", body: `{"service":"cut"}`, wantStatus: http.StatusBadRequest},
		{name: "некорректная дата", body: `{"serviceId":"cut","date":"2024-13-01","time":"10:00"}`, wantStatus: http.StatusBadRequest},
		{name: "некорректное время", body: `{"serviceId":"cut","date":"2024-05-01","time":"25:00"}`, wantStatus: http.StatusBadRequest},
		{name: "неизвестная услуга", body: `{"serviceId":"perm","date":"2024-05-01","time":"10:00"}`, wantStatus: http.StatusNotFound},
		{name: "неизвестный мастер", body: `{"serviceId":"cut","stylistId":"olga","date":"2024-05-01","time":"10:00"}`, wantStatus: http.StatusNotFound},
		{name: "длинные заметки", body: `{"serviceId":"cut","date":"2024-05-01","time":"10:00","notes":"` + strings.Repeat("n", domain.MaxNotesLength+1) + `"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}
