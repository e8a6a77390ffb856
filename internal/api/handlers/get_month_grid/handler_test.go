package get_month_grid

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getMonthGrid "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_month_grid"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newHandler() *Handler {
	uc := getMonthGrid.NewUseCase(time.UTC, nopLogger{}).
		WithTimeProvider(fixedTime{now: time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)})
	return NewHandler(uc, nopLogger{})
}

func TestHandle_ExplicitMonth(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler().Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/month?year=2024&month=0", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body MonthGridResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 2024, body.Year)
	assert.Equal(t, 0, body.Month)
	assert.Equal(t, "January", body.MonthName)
	assert.Equal(t, 1, body.LeadingBlanks, "1 января 2024: понедельник")
	assert.Equal(t, 31, body.DaysInMonth)
	require.Len(t, body.Cells, 32)
	assert.Nil(t, body.Cells[0])
	require.NotNil(t, body.Cells[1])
	assert.Equal(t, 1, body.Cells[1].Day)
	assert.True(t, body.Cells[1].IsPast)
	assert.True(t, body.Cells[15].IsToday)
	assert.Equal(t, MonthRef{Year: 2023, Month: 11}, body.Prev)
	assert.Equal(t, MonthRef{Year: 2024, Month: 1}, body.Next)
}

func TestHandle_Offset(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler().Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/month?offset=-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body MonthGridResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 2023, body.Year)
	assert.Equal(t, 11, body.Month)
	assert.Equal(t, 31, body.DaysInMonth)
}

func TestHandle_BadRequest(t *testing.T) {
	for _, query := range []string{"year=abc", "month=x", "offset=1.5", "year=10000", "offset=5000"} {
		t.Run(query, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newHandler().Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/month?"+query, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
