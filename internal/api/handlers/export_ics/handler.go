package export_ics

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	exportBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/export_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные записи"
	msgServiceNotFound    = "услуга не найдена"
	msgStylistNotFound    = "мастер не найден"
)

type Handler struct {
	useCase ExportICSUseCase
	logger  Logger
}

func NewHandler(useCase ExportICSUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/export/ics
// 200 с файлом booking.ics, 204 если выбор неполный
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /export/ics - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /export/ics - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.ExportICS(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, exportBooking.ErrServiceNotFound):
			h.logger.Warn("POST /export/ics - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, exportBooking.ErrStylistNotFound):
			h.logger.Warn("POST /export/ics - Stylist not found: stylist_id=%s", req.StylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, exportBooking.ErrInvalidInput):
			h.logger.Warn("POST /export/ics - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /export/ics - Failed to export: service_id=%s, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Empty {
		h.logger.Info("POST /export/ics - Selection incomplete, nothing to export")
		handlers.RespondNoContent(w)
		return
	}

	w.Header().Set("Content-Type", domain.ICSContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(result.Content)); err != nil {
		h.logger.Error("POST /export/ics - Failed to write response: %v", err)
		return
	}

	h.logger.Info("POST /export/ics - Exported: service_id=%s, date=%s, time=%s",
		req.ServiceID, req.Date, req.Time)
}
