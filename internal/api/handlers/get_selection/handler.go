package get_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	selectionService "github.com/m04kA/SMC-SalonBooking/internal/service/selection"
)

const (
	msgUnauthorized      = "отсутствует идентификатор сессии"
	msgSelectionNotFound = "сохраненный выбор не найден"
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

// Handle GET /api/v1/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /selection - Missing session ID")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, selectionService.ErrSelectionNotFound) {
			h.logger.Warn("GET /selection - Selection not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)
			return
		}
		h.logger.Error("GET /selection - Failed to get selection: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /selection - Selection retrieved: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
