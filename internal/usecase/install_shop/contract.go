package install_shop

import (
	"context"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
)

// DefinitionRepository регистрация определений метаполей магазина
type DefinitionRepository interface {
	EnsureDefinitions(ctx context.Context, shopID string, defs []domain.MetafieldDefinition) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
