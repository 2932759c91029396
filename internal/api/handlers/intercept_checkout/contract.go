package intercept_checkout

import (
	"context"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	deliveryGate "github.com/m04kA/SMC-DeliveryDates/internal/usecase/delivery_gate"
)

type DeliveryGateUseCase interface {
	Evaluate(ctx context.Context, req *deliveryGate.EvaluateRequest) domain.GateDecision
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
