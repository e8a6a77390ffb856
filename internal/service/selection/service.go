package selection

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	selectionRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/selection"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/service/selection/models"
)

// Service сервис последнего выбора пользователя (услуга, мастер, дата, время, контакты)
// Один выбор на сессию, каждое сохранение перезаписывает предыдущее
type Service struct {
	repo    SelectionRepository
	catalog CatalogService
	metrics MetricsCollector
	logger  Logger
}

// NewService создает новый экземпляр сервиса выбора
func NewService(
	repo SelectionRepository,
	catalog CatalogService,
	metricsCollector MetricsCollector,
	logger Logger,
) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		metrics: metricsCollector,
		logger:  logger,
	}
}

// Save сохраняет выбор сессии
// Ссылки на каталог проверяются, незаполненные поля допустимы
func (s *Service) Save(ctx context.Context, sessionID string, req *models.SaveSelectionRequest) (*models.SelectionResponse, error) {
	s.logger.Info("Save: saving selection for session=%s", sessionID)

	if err := s.validate(ctx, sessionID, req); err != nil {
		s.logger.Warn("Save: validation failed for session=%s: %v", sessionID, err)
		return nil, err
	}

	saved, err := s.repo.Upsert(ctx, req.ToDomain(sessionID))
	if err != nil {
		s.logger.Error("Save: repository error for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.ObserveSelectionSaved()
	}

	s.logger.Info("Save: successfully saved selection for session=%s, complete=%t", sessionID, saved.IsComplete())
	return models.FromDomainSelection(saved), nil
}

// Get получает сохраненный выбор сессии
func (s *Service) Get(ctx context.Context, sessionID string) (*models.SelectionResponse, error) {
	s.logger.Info("Get: fetching selection for session=%s", sessionID)

	selection, err := s.repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, selectionRepo.ErrSelectionNotFound) {
			s.logger.Warn("Get: selection for session=%s not found", sessionID)
			return nil, ErrSelectionNotFound
		}
		s.logger.Error("Get: repository error for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSelection(selection), nil
}

// Delete удаляет сохраненный выбор сессии
func (s *Service) Delete(ctx context.Context, sessionID string) error {
	s.logger.Info("Delete: deleting selection for session=%s", sessionID)

	if err := s.repo.DeleteBySessionID(ctx, sessionID); err != nil {
		if errors.Is(err, selectionRepo.ErrSelectionNotFound) {
			s.logger.Warn("Delete: selection for session=%s not found", sessionID)
			return ErrSelectionNotFound
		}
		s.logger.Error("Delete: repository error for session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted selection for session=%s", sessionID)
	return nil
}

func (s *Service) validate(ctx context.Context, sessionID string, req *models.SaveSelectionRequest) error {
	if sessionID == "" || utf8.RuneCountInString(sessionID) > domain.MaxSessionIDLength {
		return fmt.Errorf("%w: session id must be 1..%d characters", ErrInvalidInput, domain.MaxSessionIDLength)
	}

	if req.StartTime != "" && !req.StartTime.IsValid() {
		return fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}

	c := req.Customer
	switch {
	case utf8.RuneCountInString(c.Name) > domain.MaxCustomerNameLength:
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	case utf8.RuneCountInString(c.Email) > domain.MaxEmailLength:
		return fmt.Errorf("%w: email must not exceed %d characters", ErrInvalidInput, domain.MaxEmailLength)
	case c.Email != "" && !strings.Contains(c.Email, "@"):
		return fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	case utf8.RuneCountInString(c.Phone) > domain.MaxPhoneLength:
		return fmt.Errorf("%w: phone must not exceed %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	case utf8.RuneCountInString(c.Notes) > domain.MaxNotesLength:
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.ServiceID != "" {
		if _, err := s.catalog.GetService(ctx, req.ServiceID); err != nil {
			if errors.Is(err, catalogService.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			return fmt.Errorf("%w: validate - catalog error: %v", ErrInternal, err)
		}
	}

	if req.StylistID != "" {
		if _, err := s.catalog.GetStylist(ctx, req.StylistID); err != nil {
			if errors.Is(err, catalogService.ErrStylistNotFound) {
				return ErrStylistNotFound
			}
			return fmt.Errorf("%w: validate - catalog error: %v", ErrInternal, err)
		}
	}

	return nil
}
