package delivery_date

import (
	"context"

	deliveryGate "github.com/m04kA/SMC-DeliveryDates/internal/usecase/delivery_gate"
)

type DeliveryGateUseCase interface {
	Pick(ctx context.Context, req *deliveryGate.PickRequest) (*deliveryGate.PickResponse, error)
	Clear(ctx context.Context, checkoutToken string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
