package install_shop

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DeliveryDates/internal/domain"
)

// UseCase регистрирует определения метаполей при установке приложения в магазин
type UseCase struct {
	repo   DefinitionRepository
	defs   []domain.MetafieldDefinition
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo DefinitionRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		defs:   domain.DefaultMetafieldDefinitions,
		logger: logger,
	}
}

// Execute регистрирует каждое определение отдельно
// Ошибка одного определения не прерывает остальные; повторный вызов безопасен
func (uc *UseCase) Execute(ctx context.Context, shopID string) (*Response, error) {
	if strings.TrimSpace(shopID) == "" {
		return nil, fmt.Errorf("%w: shopID is required", ErrInvalidInput)
	}

	uc.logger.Info("InstallShop: registering %d metafield definitions for shop=%s", len(uc.defs), shopID)

	resp := &Response{ShopID: shopID}
	for _, def := range uc.defs {
		name := def.Namespace + "." + def.Key

		created, err := uc.repo.EnsureDefinitions(ctx, shopID, []domain.MetafieldDefinition{def})
		if err != nil {
			uc.logger.Error("InstallShop: shop=%s, definition %s: %v", shopID, name, err)
			resp.Failed = append(resp.Failed, name)
			continue
		}

		if created > 0 {
			resp.Created++
		} else {
			resp.Existed++
		}
	}

	if len(resp.Failed) == len(uc.defs) {
		return nil, fmt.Errorf("%w: no metafield definitions registered for shop %s", ErrInternal, shopID)
	}

	uc.logger.Info("InstallShop: shop=%s, created=%d, existed=%d, failed=%d",
		shopID, resp.Created, resp.Existed, len(resp.Failed))
	return resp, nil
}
