package delivery_gate

import (
	"context"

	"github.com/m04kA/SMC-DeliveryDates/internal/availability"
)

// SelectionStore хранилище выбранной даты доставки по checkout
type SelectionStore interface {
	Get(ctx context.Context, checkoutToken string) (string, error)
	Set(ctx context.Context, checkoutToken string, date string) error
	Remove(ctx context.Context, checkoutToken string) error
}

// PolicyProvider текущая политика доступности дат магазина
type PolicyProvider interface {
	Policy(ctx context.Context, shopID string) (availability.Policy, error)
}

// DecisionObserver учитывает решения шлюза (метрики)
type DecisionObserver interface {
	ObserveGateDecision(behavior, reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
