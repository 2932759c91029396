package weekdays

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	metafieldsRepo "github.com/m04kA/SMC-DeliveryDates/internal/infra/storage/metafields"
)

// Service сервис заблокированных дней недели
type Service struct {
	store    ConfigStore
	observer WriteObserver
	logger   Logger
}

// NewService создает новый экземпляр сервиса
func NewService(store ConfigStore, observer WriteObserver, logger Logger) *Service {
	return &Service{
		store:    store,
		observer: observer,
		logger:   logger,
	}
}

// Get загружает заблокированные дни недели магазина
// Отсутствующее или битое значение в хранилище дает пустое множество
func (s *Service) Get(ctx context.Context, shopID string) (domain.BlockedWeekdaySet, error) {
	if strings.TrimSpace(shopID) == "" {
		return domain.BlockedWeekdaySet{}, fmt.Errorf("%w: shopID is required", ErrInvalidInput)
	}

	raw, err := s.store.Get(ctx, shopID, domain.KeyBlockedDays)
	if err != nil {
		if errors.Is(err, metafieldsRepo.ErrMetafieldNotFound) {
			return domain.NewBlockedWeekdaySet(), nil
		}
		s.logger.Error("Get: failed to read blockedDays for shop=%s: %v", shopID, err)
		return domain.BlockedWeekdaySet{}, fmt.Errorf("%w: Get - store error: %v", ErrInternal, err)
	}

	set, err := domain.DecodeBlockedWeekdays(raw)
	if err != nil {
		s.logger.Warn("Get: ignoring malformed blockedDays for shop=%s: %v", shopID, err)
	}
	return set, nil
}

// Toggle переключает день недели и сразу сохраняет всё множество
func (s *Service) Toggle(ctx context.Context, shopID string, dayName string) (domain.BlockedWeekdaySet, error) {
	s.logger.Info("Toggle: shop=%s, day=%s", shopID, dayName)

	day, ok := domain.ParseWeekday(dayName)
	if !ok {
		s.logger.Warn("Toggle: unknown weekday %q", dayName)
		return domain.BlockedWeekdaySet{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, dayName)
	}

	set, err := s.Get(ctx, shopID)
	if err != nil {
		return domain.BlockedWeekdaySet{}, err
	}

	set.Toggle(day)

	raw, err := domain.EncodeBlockedWeekdays(set)
	if err != nil {
		return domain.BlockedWeekdaySet{}, fmt.Errorf("%w: Toggle - encode: %v", ErrInternal, err)
	}

	err = s.store.Set(ctx, shopID, domain.KeyBlockedDays, raw)
	s.observer.ObserveConfigWrite(domain.KeyBlockedDays, err)
	if err != nil {
		s.logger.Error("Toggle: failed to persist blockedDays for shop=%s: %v", shopID, err)
		return domain.BlockedWeekdaySet{}, fmt.Errorf("%w: Toggle - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Toggle: shop=%s, %s blocked=%t", shopID, day, set.Contains(day))
	return set, nil
}
