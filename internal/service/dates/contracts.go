package dates

import (
	"context"
	"time"
)

// ConfigStore хранилище конфигурации магазина (ключ dates)
type ConfigStore interface {
	Get(ctx context.Context, shopID string, key string) (string, error)
	Set(ctx context.Context, shopID string, key string, value string) error
}

// WriteObserver учитывает записи конфигурации (метрики)
type WriteObserver interface {
	ObserveConfigWrite(key string, err error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
