package save_selection

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	selectionService "github.com/m04kA/SMC-SalonBooking/internal/service/selection"
	"github.com/m04kA/SMC-SalonBooking/internal/service/selection/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	gotSession string
	gotReq     *models.SaveSelectionRequest
	err        error
}

func (f *fakeService) Save(_ context.Context, sessionID string, req *models.SaveSelectionRequest) (*models.SelectionResponse, error) {
	f.gotSession = sessionID
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.SelectionResponse{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Complete:  req.ServiceID != "" && !req.Date.IsZero() && req.StartTime != "",
	}, nil
}

func put(svc SelectionService, sessionID, body string) *httptest.ResponseRecorder {
	h := middleware.Session(http.HandlerFunc(NewHandler(svc, nopLogger{}).Handle))

	req := httptest.NewRequest(http.MethodPut, "/api/v1/selection", strings.NewReader(body))
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Saves(t *testing.T) {
	svc := &fakeService{}
	rec := put(svc, "sess-1", `{"serviceId":"cut","date":"2024-05-01","time":"9:05","customer":{"name":"Ion"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sess-1", svc.gotSession)
	assert.Equal(t, domain.CalendarDate{Year: 2024, Month: time.May, Day: 1}, svc.gotReq.Date)
	assert.Equal(t, "09:05", svc.gotReq.StartTime.String())
	assert.Equal(t, "Ion", svc.gotReq.Customer.Name)

	var body models.SelectionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Complete)
}

func TestHandle_RequiresSession(t *testing.T) {
	rec := put(&fakeService{}, "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "битый JSON", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "некорректная дата", body: `{"date":"May 1"}`, wantStatus: http.StatusBadRequest},
		{name: "некорректное время", body: `{"time":"noon"}`, wantStatus: http.StatusBadRequest},
		{name: "невалидные данные", body: `{}`, err: selectionService.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "нет услуги", body: `{}`, err: selectionService.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "нет мастера", body: `{}`, err: selectionService.ErrStylistNotFound, wantStatus: http.StatusNotFound},
		{name: "внутренняя ошибка", body: `{}`, err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := put(&fakeService{err: tt.err}, "sess-1", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
