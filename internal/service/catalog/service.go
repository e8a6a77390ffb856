package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
)

// Service сервис каталога услуг и мастеров
// Каталог статичен и задается конфигурацией, порядок элементов сохраняется
type Service struct {
	services    []domain.SalonService
	stylists    []domain.Stylist
	serviceByID map[string]domain.SalonService
	stylistByID map[string]domain.Stylist
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(services []domain.SalonService, stylists []domain.Stylist, logger Logger) *Service {
	s := &Service{
		services:    append([]domain.SalonService(nil), services...),
		stylists:    append([]domain.Stylist(nil), stylists...),
		serviceByID: make(map[string]domain.SalonService, len(services)),
		stylistByID: make(map[string]domain.Stylist, len(stylists)),
		logger:      logger,
	}

	for _, svc := range services {
		s.serviceByID[svc.ID] = svc
	}
	for _, st := range stylists {
		s.stylistByID[st.ID] = st
	}

	return s
}

// GetCatalog возвращает весь каталог
func (s *Service) GetCatalog(ctx context.Context) (*models.CatalogResponse, error) {
	resp := &models.CatalogResponse{
		Services: make([]models.ServiceResponse, 0, len(s.services)),
		Stylists: make([]models.StylistResponse, 0, len(s.stylists)),
	}

	for _, svc := range s.services {
		resp.Services = append(resp.Services, models.FromDomainService(svc))
	}
	for _, st := range s.stylists {
		resp.Stylists = append(resp.Stylists, models.FromDomainStylist(st))
	}

	s.logger.Info("GetCatalog: services=%d, stylists=%d", len(resp.Services), len(resp.Stylists))
	return resp, nil
}

// GetService возвращает услугу по ID
func (s *Service) GetService(ctx context.Context, serviceID string) (*domain.SalonService, error) {
	svc, ok := s.serviceByID[serviceID]
	if !ok {
		return nil, ErrServiceNotFound
	}
	return &svc, nil
}

// GetStylist возвращает мастера по ID
func (s *Service) GetStylist(ctx context.Context, stylistID string) (*domain.Stylist, error) {
	st, ok := s.stylistByID[stylistID]
	if !ok {
		return nil, ErrStylistNotFound
	}
	return &st, nil
}
