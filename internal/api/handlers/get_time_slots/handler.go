package get_time_slots

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /slots - Failed to generate slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Slots generated: count=%d", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
