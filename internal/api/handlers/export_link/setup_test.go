package export_link

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/calendar"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	exportBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/export_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newHandler() *Handler {
	cat := catalog.NewService(
		[]domain.SalonService{{ID: "cut", Name: "Haircut", DurationMinutes: 45, PriceEUR: 25}},
		[]domain.Stylist{{ID: "ana", Name: "Ana Pop"}},
		nopLogger{},
	)
	exporter := calendar.NewExporter(calendar.DefaultProductID, calendar.DefaultProviderURL).
		WithTimeProvider(fixedTime{now: time.Date(2024, time.April, 20, 9, 0, 0, 0, time.UTC)})

	uc := exportBooking.NewUseCase(cat, exporter, "Salon Downtown", time.UTC, nil, nopLogger{})
	return NewHandler(uc, nopLogger{})
}
