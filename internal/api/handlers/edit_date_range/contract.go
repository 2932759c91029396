package edit_date_range

import (
	"context"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/dates/models"
)

type DatesService interface {
	Edit(ctx context.Context, index int, req *models.RangeRequest) (domain.DateRange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
