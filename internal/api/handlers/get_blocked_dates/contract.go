package get_blocked_dates

import (
	"context"

	"github.com/m04kA/SMC-DeliveryDates/internal/availability"
	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

type DatesService interface {
	BlockedDays(ctx context.Context, shopID string, excludeIndex *int, window *availability.Window) ([]types.Date, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
