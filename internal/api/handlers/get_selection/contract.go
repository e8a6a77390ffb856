package get_selection

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/selection/models"
)

type SelectionService interface {
	Get(ctx context.Context, sessionID string) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
