package export_ics

import (
	"context"

	exportBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/export_booking"
)

type ExportICSUseCase interface {
	ExportICS(ctx context.Context, req *exportBooking.Request) (*exportBooking.ICSResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
