package toggle_blocked_day

import (
	"context"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
)

type WeekdaysService interface {
	Toggle(ctx context.Context, shopID string, day string) (domain.BlockedWeekdaySet, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
