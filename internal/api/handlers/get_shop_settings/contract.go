package get_shop_settings

import (
	"context"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/dates/models"
)

type WeekdaysService interface {
	Get(ctx context.Context, shopID string) (domain.BlockedWeekdaySet, error)
}

type DatesService interface {
	List(ctx context.Context, shopID string) (*models.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
