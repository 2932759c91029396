package remove_date_range

import (
	"context"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
)

type DatesService interface {
	RequestRemove(ctx context.Context, shopID string, index int) (domain.DateRange, error)
	ConfirmRemove(ctx context.Context, shopID string) (int, domain.DateRange, error)
	CancelRemove(ctx context.Context, shopID string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
