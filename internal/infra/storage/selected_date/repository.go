package selected_date

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
)

// Repository хранит выбранную покупателем дату доставки в рамках одного checkout
// Ключ: checkout:{token}:delivery_date, значение: дата YYYY-MM-DD
type Repository struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// NewRepository создает репозиторий; ttl ограничивает жизнь выбора временем жизни checkout
func NewRepository(rdb redis.UniversalClient, ttl time.Duration) *Repository {
	return &Repository{rdb: rdb, ttl: ttl}
}

// Get возвращает выбранную дату или ErrNotFound
func (r *Repository) Get(ctx context.Context, checkoutToken string) (string, error) {
	value, err := r.rdb.Get(ctx, key(checkoutToken)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get: %v", ErrStorage, err)
	}
	return value, nil
}

// Set перезаписывает выбранную дату
func (r *Repository) Set(ctx context.Context, checkoutToken string, date string) error {
	if err := r.rdb.Set(ctx, key(checkoutToken), date, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set: %v", ErrStorage, err)
	}
	return nil
}

// Remove удаляет выбор; удаление отсутствующего ключа не ошибка
func (r *Repository) Remove(ctx context.Context, checkoutToken string) error {
	if err := r.rdb.Del(ctx, key(checkoutToken)).Err(); err != nil {
		return fmt.Errorf("%w: Remove: %v", ErrStorage, err)
	}
	return nil
}

func key(checkoutToken string) string {
	return "checkout:" + checkoutToken + ":" + domain.DeliveryDateKey
}
