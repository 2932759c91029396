package get_disabled_dates

import (
	"context"

	getDisabledDates "github.com/m04kA/SMC-DeliveryDates/internal/usecase/get_disabled_dates"
)

type GetDisabledDatesUseCase interface {
	Execute(ctx context.Context, shopID string) (*getDisabledDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
