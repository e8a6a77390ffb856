package get_month_grid

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	getMonthGrid "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_month_grid"
)

const (
	msgInvalidParams = "некорректные параметры year, month или offset, ожидаются целые числа"
	msgOutOfRange    = "запрошенный месяц вне допустимого диапазона"
)

type Handler struct {
	useCase GetMonthGridUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/month
// Query params: year, month (0 = январь), offset - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(q.Get("year"), q.Get("month"), q.Get("offset"))
	if err != nil {
		h.logger.Warn("GET /calendar/month - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getMonthGrid.ErrInvalidInput):
			h.logger.Warn("GET /calendar/month - Out of range: year=%d, month=%d, offset=%d",
				useCaseReq.Year, useCaseReq.Month, useCaseReq.Offset)
			handlers.RespondBadRequest(w, msgOutOfRange)

		default:
			h.logger.Error("GET /calendar/month - Failed to build grid: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/month - Grid built: year=%d, month=%d, cells=%d",
		result.Year, result.Month, len(result.Cells))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
