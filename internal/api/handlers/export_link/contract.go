package export_link

import (
	"context"

	exportBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/export_booking"
)

type ExportLinkUseCase interface {
	ExportLink(ctx context.Context, req *exportBooking.Request) (*exportBooking.LinkResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
