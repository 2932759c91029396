package add_date_range

import (
	"context"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/dates/models"
)

type DatesService interface {
	Add(ctx context.Context, req *models.RangeRequest) (int, domain.DateRange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
