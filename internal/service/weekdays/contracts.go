package weekdays

import "context"

// ConfigStore хранилище конфигурации магазина (ключ blockedDays)
type ConfigStore interface {
	Get(ctx context.Context, shopID string, key string) (string, error)
	Set(ctx context.Context, shopID string, key string, value string) error
}

// WriteObserver учитывает записи конфигурации (метрики)
type WriteObserver interface {
	ObserveConfigWrite(key string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
