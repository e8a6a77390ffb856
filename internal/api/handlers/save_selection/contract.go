package save_selection

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/selection/models"
)

type SelectionService interface {
	Save(ctx context.Context, sessionID string, req *models.SaveSelectionRequest) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
