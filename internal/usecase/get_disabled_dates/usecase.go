package get_disabled_dates

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeliveryDates/internal/availability"
	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	metafieldsRepo "github.com/m04kA/SMC-DeliveryDates/internal/infra/storage/metafields"
	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

// UseCase use case доступности дат для покупателя
// Конфигурация читается заново на каждый запрос, без сессии
type UseCase struct {
	store        ConfigStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store ConfigStore, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает декларативные правила для календаря покупателя
func (uc *UseCase) Execute(ctx context.Context, shopID string) (*Response, error) {
	policy, err := uc.Policy(ctx, shopID)
	if err != nil {
		return nil, err
	}

	return &Response{
		ShopID: shopID,
		Today:  policy.Today,
		Rules:  policy.Rules(),
	}, nil
}

// Month возвращает все недоступные дни месяца month (YYYY-MM)
func (uc *UseCase) Month(ctx context.Context, shopID string, month string) (*MonthResponse, error) {
	parsed, err := time.Parse(domain.MonthFormat, strings.TrimSpace(month))
	if err != nil {
		uc.logger.Warn("Month: invalid month %q", month)
		return nil, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidInput)
	}

	policy, err := uc.Policy(ctx, shopID)
	if err != nil {
		return nil, err
	}

	return &MonthResponse{
		ShopID:       shopID,
		Month:        parsed.Format(domain.MonthFormat),
		DisabledDays: policy.DisabledDaysInMonth(parsed.Year(), parsed.Month()),
	}, nil
}

// Check проверяет, может ли покупатель выбрать дату date (YYYY-MM-DD)
func (uc *UseCase) Check(ctx context.Context, shopID string, date string) (*DateCheckResponse, error) {
	d, err := types.ParseDate(date)
	if err != nil {
		uc.logger.Warn("Check: invalid date %q", date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	policy, err := uc.Policy(ctx, shopID)
	if err != nil {
		return nil, err
	}

	return &DateCheckResponse{
		ShopID:   shopID,
		Date:     d,
		Disabled: policy.IsDisabled(d),
	}, nil
}

// Policy собирает текущую политику магазина
// Отсутствующие или битые значения конфигурации считаются пустыми
func (uc *UseCase) Policy(ctx context.Context, shopID string) (availability.Policy, error) {
	if strings.TrimSpace(shopID) == "" {
		return availability.Policy{}, fmt.Errorf("%w: shopID is required", ErrInvalidInput)
	}

	rawDays, err := uc.read(ctx, shopID, domain.KeyBlockedDays)
	if err != nil {
		return availability.Policy{}, err
	}
	rawDates, err := uc.read(ctx, shopID, domain.KeyDates)
	if err != nil {
		return availability.Policy{}, err
	}

	weekdays, err := domain.DecodeBlockedWeekdays(rawDays)
	if err != nil {
		uc.logger.Warn("Policy: shop=%s: %v", shopID, err)
	}
	ranges, err := domain.DecodeDateRanges(rawDates)
	if err != nil {
		uc.logger.Warn("Policy: shop=%s: %v", shopID, err)
	}

	return availability.Policy{
		Weekdays: weekdays,
		Ranges:   ranges,
		Today:    types.DateOf(uc.timeProvider.Now().UTC()),
	}, nil
}

func (uc *UseCase) read(ctx context.Context, shopID, key string) (string, error) {
	raw, err := uc.store.Get(ctx, shopID, key)
	if err != nil {
		if errors.Is(err, metafieldsRepo.ErrMetafieldNotFound) {
			return "", nil
		}
		uc.logger.Error("Policy: failed to read %s for shop=%s: %v", key, shopID, err)
		return "", fmt.Errorf("%w: read %s: %v", ErrInternal, key, err)
	}
	return raw, nil
}
