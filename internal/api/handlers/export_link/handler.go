package export_link

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
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
	useCase ExportLinkUseCase
	logger  Logger
}

func NewHandler(useCase ExportLinkUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/export/link
// Для неполного выбора возвращается ссылка-заглушка "#"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /export/link - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /export/link - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.ExportLink(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, exportBooking.ErrServiceNotFound):
			h.logger.Warn("POST /export/link - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, exportBooking.ErrStylistNotFound):
			h.logger.Warn("POST /export/link - Stylist not found: stylist_id=%s", req.StylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, exportBooking.ErrInvalidInput):
			h.logger.Warn("POST /export/link - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /export/link - Failed to build link: service_id=%s, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /export/link - Link built: service_id=%s, empty=%t", req.ServiceID, result.Empty)
	handlers.RespondJSON(w, http.StatusOK, &LinkResponse{URL: result.URL, Empty: result.Empty})
}
