package export_link

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	exportBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/export_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// ExportRequest HTTP request model
// Пустые поля допустимы: неполный выбор дает пустой результат
type ExportRequest struct {
	ServiceID string `json:"serviceId"`
	StylistID string `json:"stylistId"`
	Date      string `json:"date"` // "2024-05-01"
	Time      string `json:"time"` // "10:00"
	Notes     string `json:"notes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *ExportRequest) ToUseCaseRequest() (*exportBooking.Request, error) {
	req := &exportBooking.Request{
		ServiceID: r.ServiceID,
		StylistID: r.StylistID,
		Notes:     r.Notes,
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

// LinkResponse HTTP response model
type LinkResponse struct {
	URL   string `json:"url"`
	Empty bool   `json:"empty"`
}
