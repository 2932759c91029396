package delivery_gate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
	selectedDateRepo "github.com/m04kA/SMC-DeliveryDates/internal/infra/storage/selected_date"
	"github.com/m04kA/SMC-DeliveryDates/internal/usecase/get_disabled_dates"
	"github.com/m04kA/SMC-DeliveryDates/pkg/types"
)

// UseCase шлюз перехода по checkout: без выбранной даты доставки переход блокируется
type UseCase struct {
	store    SelectionStore
	policy   PolicyProvider
	observer DecisionObserver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store SelectionStore, policy PolicyProvider, observer DecisionObserver, logger Logger) *UseCase {
	return &UseCase{
		store:    store,
		policy:   policy,
		observer: observer,
		logger:   logger,
	}
}

// Pick сохраняет выбор покупателя
// Берется последняя непустая дата списка; пустой список сбрасывает выбор.
// Список только из пустых значений ничего не меняет и возвращает текущий выбор.
// Дата, запрещенная текущими правилами магазина, отклоняется.
func (uc *UseCase) Pick(ctx context.Context, req *PickRequest) (*PickResponse, error) {
	if strings.TrimSpace(req.CheckoutToken) == "" {
		return nil, fmt.Errorf("%w: checkout token is required", ErrInvalidInput)
	}

	if len(req.Dates) == 0 {
		if err := uc.Clear(ctx, req.CheckoutToken); err != nil {
			return nil, err
		}
		return &PickResponse{State: domain.SelectionUnset}, nil
	}

	picked := lastNonEmpty(req.Dates)
	if picked == "" {
		uc.logger.Info("Pick: checkout=%s, no non-empty date in %d values, selection kept", req.CheckoutToken, len(req.Dates))
		return uc.current(ctx, req.CheckoutToken)
	}

	d, err := types.ParseDate(picked)
	if err != nil {
		uc.logger.Warn("Pick: checkout=%s, invalid date %q", req.CheckoutToken, picked)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	policy, err := uc.policy.Policy(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, get_disabled_dates.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: Pick - policy: %v", ErrInternal, err)
	}
	if policy.IsDisabled(d) {
		uc.logger.Warn("Pick: checkout=%s, shop=%s, date %s is disabled", req.CheckoutToken, req.ShopID, d)
		return nil, fmt.Errorf("%w: %s", ErrDateDisabled, d)
	}

	gate := domain.NewSelectionGate(nil)
	gate.Pick(d)

	if err := uc.store.Set(ctx, req.CheckoutToken, d.String()); err != nil {
		uc.logger.Error("Pick: failed to store selection for checkout=%s: %v", req.CheckoutToken, err)
		return nil, fmt.Errorf("%w: Pick - store: %v", ErrInternal, err)
	}

	uc.logger.Info("Pick: checkout=%s, delivery date %s", req.CheckoutToken, d)
	return &PickResponse{
		State: gate.State(),
		Date:  &d,
		Label: d.Long(),
	}, nil
}

// Clear сбрасывает выбор; сброс отсутствующего выбора не ошибка
func (uc *UseCase) Clear(ctx context.Context, checkoutToken string) error {
	if strings.TrimSpace(checkoutToken) == "" {
		return fmt.Errorf("%w: checkout token is required", ErrInvalidInput)
	}

	if err := uc.store.Remove(ctx, checkoutToken); err != nil {
		uc.logger.Error("Clear: failed to remove selection for checkout=%s: %v", checkoutToken, err)
		return fmt.Errorf("%w: Clear - store: %v", ErrInternal, err)
	}

	uc.logger.Info("Clear: checkout=%s, selection removed", checkoutToken)
	return nil
}

// Evaluate отвечает на одну попытку перехода
// Если хранилище недоступно, переход блокируется
func (uc *UseCase) Evaluate(ctx context.Context, req *EvaluateRequest) domain.GateDecision {
	decision := uc.evaluate(ctx, req)
	uc.observer.ObserveGateDecision(string(decision.Behavior), decision.Reason)
	return decision
}

func (uc *UseCase) evaluate(ctx context.Context, req *EvaluateRequest) domain.GateDecision {
	if !req.CanBlockProgress {
		return domain.Allow()
	}

	gate, err := uc.load(ctx, req.CheckoutToken)
	if err != nil {
		uc.logger.Error("Evaluate: checkout=%s, blocking: %v", req.CheckoutToken, err)
		return domain.Block(domain.MsgDeliveryDateUnverifiable)
	}

	decision := gate.Evaluate()
	if !decision.IsAllowed() {
		uc.logger.Info("Evaluate: checkout=%s, blocked: %s", req.CheckoutToken, decision.Reason)
	}
	return decision
}

func (uc *UseCase) load(ctx context.Context, checkoutToken string) (*domain.SelectionGate, error) {
	if strings.TrimSpace(checkoutToken) == "" {
		return domain.NewSelectionGate(nil), nil
	}

	raw, err := uc.store.Get(ctx, checkoutToken)
	if err != nil {
		if errors.Is(err, selectedDateRepo.ErrNotFound) {
			return domain.NewSelectionGate(nil), nil
		}
		return nil, err
	}

	d, err := types.ParseDate(raw)
	if err != nil {
		uc.logger.Warn("Evaluate: checkout=%s, unreadable stored date %q", checkoutToken, raw)
		return domain.NewSelectionGate(nil), nil
	}
	return domain.NewSelectionGate(&d), nil
}

func (uc *UseCase) current(ctx context.Context, checkoutToken string) (*PickResponse, error) {
	gate, err := uc.load(ctx, checkoutToken)
	if err != nil {
		uc.logger.Error("Pick: failed to read selection for checkout=%s: %v", checkoutToken, err)
		return nil, fmt.Errorf("%w: Pick - store: %v", ErrInternal, err)
	}

	d, ok := gate.Selected()
	if !ok {
		return &PickResponse{State: domain.SelectionUnset}, nil
	}
	return &PickResponse{State: gate.State(), Date: &d, Label: d.Long()}, nil
}

func lastNonEmpty(values []string) string {
	for i := len(values) - 1; i >= 0; i-- {
		if v := strings.TrimSpace(values[i]); v != "" {
			return v
		}
	}
	return ""
}
