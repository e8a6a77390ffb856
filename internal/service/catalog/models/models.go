package models

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// Response модели

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	PriceEUR        float64 `json:"priceEur"`
}

// StylistResponse мастер салона
type StylistResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// CatalogResponse весь каталог салона
type CatalogResponse struct {
	Services []ServiceResponse `json:"services"`
	Stylists []StylistResponse `json:"stylists"`
}

// FromDomainService конвертирует доменную услугу в response
func FromDomainService(s domain.SalonService) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		PriceEUR:        s.PriceEUR,
	}
}

// FromDomainStylist конвертирует доменного мастера в response
func FromDomainStylist(s domain.Stylist) StylistResponse {
	return StylistResponse{
		ID:        s.ID,
		Name:      s.Name,
		AvatarURL: s.AvatarURL,
	}
}
