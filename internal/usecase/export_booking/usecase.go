package export_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/calendar"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
)

// UseCase use case для экспорта записи в календарь (ICS файл и ссылка провайдера)
type UseCase struct {
	catalog  CatalogService
	exporter Exporter
	location string
	tz       *time.Location
	metrics  MetricsCollector
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
// location адрес салона для поля LOCATION, tz часовой пояс, в котором выбраны дата и время
func NewUseCase(
	catalog CatalogService,
	exporter Exporter,
	location string,
	tz *time.Location,
	metricsCollector MetricsCollector,
	logger Logger,
) *UseCase {
	if tz == nil {
		tz = time.Local
	}
	return &UseCase{
		catalog:  catalog,
		exporter: exporter,
		location: location,
		tz:       tz,
		metrics:  metricsCollector,
		logger:   logger,
	}
}

// ExportICS возвращает ICS файл для выбранной записи
// Неполный выбор дает пустой ответ (Empty = true) без ошибки
func (uc *UseCase) ExportICS(ctx context.Context, req *Request) (*ICSResponse, error) {
	ev, err := uc.buildEvent(ctx, req)
	if err != nil {
		uc.observe(metrics.KindICS, metrics.ResultError)
		return nil, err
	}

	if ev == nil {
		uc.logger.Info("ExportICS: selection is incomplete, nothing to export")
		uc.observe(metrics.KindICS, metrics.ResultInert)
		return &ICSResponse{Empty: true}, nil
	}

	content := uc.exporter.BuildICS(ev)
	if content == "" {
		uc.logger.Error("ExportICS: exporter returned empty document for service=%s", req.ServiceID)
		uc.observe(metrics.KindICS, metrics.ResultError)
		return nil, fmt.Errorf("%w: empty ics document", ErrInternal)
	}

	uc.logger.Info("ExportICS: exported service=%s, start=%s, bytes=%d",
		req.ServiceID, calendar.FormatICSTimestamp(ev.Start), len(content))
	uc.observe(metrics.KindICS, metrics.ResultOK)

	return &ICSResponse{
		Filename:    domain.ICSFilename,
		ContentType: domain.ICSContentType,
		Content:     content,
	}, nil
}

// ExportLink возвращает ссылку "добавить в календарь" для выбранной записи
// Неполный выбор дает ссылку-заглушку "#"
func (uc *UseCase) ExportLink(ctx context.Context, req *Request) (*LinkResponse, error) {
	ev, err := uc.buildEvent(ctx, req)
	if err != nil {
		uc.observe(metrics.KindLink, metrics.ResultError)
		return nil, err
	}

	link := uc.exporter.BuildProviderLink(ev)
	if ev == nil {
		uc.logger.Info("ExportLink: selection is incomplete, returning placeholder")
		uc.observe(metrics.KindLink, metrics.ResultInert)
		return &LinkResponse{Empty: true, URL: link}, nil
	}

	uc.logger.Info("ExportLink: built link for service=%s, start=%s",
		req.ServiceID, calendar.FormatICSTimestamp(ev.Start))
	uc.observe(metrics.KindLink, metrics.ResultOK)

	return &LinkResponse{URL: link}, nil
}

// buildEvent разрешает каталог и строит событие; nil без ошибки означает неполный выбор
func (uc *UseCase) buildEvent(ctx context.Context, req *Request) (*domain.BookingEvent, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExportBooking: validation failed: %v", err)
		return nil, err
	}

	if isIncomplete(req) {
		return nil, nil
	}

	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogService.ErrServiceNotFound) {
			uc.logger.Warn("ExportBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("ExportBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	var stylist *domain.Stylist
	if req.StylistID != "" {
		stylist, err = uc.catalog.GetStylist(ctx, req.StylistID)
		if err != nil {
			if errors.Is(err, catalogService.ErrStylistNotFound) {
				uc.logger.Warn("ExportBooking: stylist id=%s not found", req.StylistID)
				return nil, ErrStylistNotFound
			}
			uc.logger.Error("ExportBooking: failed to get stylist id=%s: %v", req.StylistID, err)
			return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
		}
	}

	return calendar.BuildEvent(calendar.EventInput{
		Date:            req.Date,
		TimeLabel:       req.StartTime.String(),
		DurationMinutes: service.DurationMinutes,
		Title:           eventTitle(service),
		Details:         eventDetails(stylist, req.Notes),
		Location:        uc.location,
		TZ:              uc.tz,
	}), nil
}

func (uc *UseCase) observe(kind, result string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.ObserveExport(kind, result)
}
