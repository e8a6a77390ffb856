package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// CustomerInfo контактные данные клиента
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// SaveSelectionRequest запрос на сохранение выбора сессии
// Все поля опциональны: сохраняется и частично заполненная форма
type SaveSelectionRequest struct {
	ServiceID string              `json:"serviceId"`
	StylistID string              `json:"stylistId"`
	Date      domain.CalendarDate `json:"date"`
	StartTime types.TimeString    `json:"time"`
	Customer  CustomerInfo        `json:"customer"`
}

// SelectionResponse сохраненный выбор сессии
type SelectionResponse struct {
	ServiceID string              `json:"serviceId"`
	StylistID string              `json:"stylistId"`
	Date      domain.CalendarDate `json:"date"`
	StartTime types.TimeString    `json:"time"`
	Customer  CustomerInfo        `json:"customer"`
	Complete  bool                `json:"complete"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// ToDomain преобразует запрос в доменную модель
func (r *SaveSelectionRequest) ToDomain(sessionID string) *domain.Selection {
	return &domain.Selection{
		SessionID: sessionID,
		ServiceID: r.ServiceID,
		StylistID: r.StylistID,
		Date:      r.Date,
		StartTime: r.StartTime,
		Customer: domain.Customer{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
			Notes: r.Customer.Notes,
		},
	}
}

// FromDomainSelection преобразует доменную модель в ответ
func FromDomainSelection(s *domain.Selection) *SelectionResponse {
	return &SelectionResponse{
		ServiceID: s.ServiceID,
		StylistID: s.StylistID,
		Date:      s.Date,
		StartTime: s.StartTime,
		Customer: CustomerInfo{
			Name:  s.Customer.Name,
			Email: s.Customer.Email,
			Phone: s.Customer.Phone,
			Notes: s.Customer.Notes,
		},
		Complete:  s.IsComplete(),
		UpdatedAt: s.UpdatedAt,
	}
}
