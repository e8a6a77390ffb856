package save_selection

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/selection/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// SaveSelectionRequest HTTP request model
type SaveSelectionRequest struct {
	ServiceID string              `json:"serviceId"`
	StylistID string              `json:"stylistId"`
	Date      string              `json:"date"` // "2024-05-01" или пусто
	Time      string              `json:"time"` // "10:00" или пусто
	Customer  models.CustomerInfo `json:"customer"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SaveSelectionRequest) ToServiceRequest() (*models.SaveSelectionRequest, error) {
	req := &models.SaveSelectionRequest{
		ServiceID: r.ServiceID,
		StylistID: r.StylistID,
		Customer:  r.Customer,
	}

	if r.Date != "" {
		date, err := domain.ParseCalendarDate(r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if r.Time != "" {
		startTime, err := types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, err
		}
		req.StartTime = startTime
	}

	return req, nil
}
