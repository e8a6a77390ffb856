package save_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	selectionService "github.com/m04kA/SMC-SalonBooking/internal/service/selection"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

const (
	msgUnauthorized       = "отсутствует идентификатор сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные выбора"
	msgServiceNotFound    = "услуга не найдена"
	msgStylistNotFound    = "мастер не найден"
)

type Handler struct {
	service SelectionService
	logger  Logger
}

func NewHandler(service SelectionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("PUT /selection - Missing session ID")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req SaveSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /selection - Invalid request body: session=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /selection - Failed to parse request: session=%s, error=%v", sessionID, err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.service.Save(r.Context(), sessionID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, selectionService.ErrServiceNotFound):
			h.logger.Warn("PUT /selection - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, selectionService.ErrStylistNotFound):
			h.logger.Warn("PUT /selection - Stylist not found: stylist_id=%s", req.StylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, selectionService.ErrInvalidInput):
			h.logger.Warn("PUT /selection - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /selection - Failed to save selection: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /selection - Selection saved: session=%s, complete=%t", sessionID, result.Complete)
	handlers.RespondJSON(w, http.StatusOK, result)
}
