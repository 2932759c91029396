package check_availability

import (
	"context"

	getDisabledDates "github.com/m04kA/SMC-DeliveryDates/internal/usecase/get_disabled_dates"
)

type AvailabilityUseCase interface {
	Month(ctx context.Context, shopID string, month string) (*getDisabledDates.MonthResponse, error)
	Check(ctx context.Context, shopID string, date string) (*getDisabledDates.DateCheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
