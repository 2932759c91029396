package install_shop

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryDates/internal/api/handlers"
	installShop "github.com/m04kA/SMC-DeliveryDates/internal/usecase/install_shop"
)

const (
	msgInvalidShopID = "некорректный ID магазина"
)

type Handler struct {
	useCase InstallShopUseCase
	logger  Logger
}

func NewHandler(useCase InstallShopUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/shops/{shopId}/install
// Регистрирует определения метаполей магазина, повторный вызов безопасен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	result, err := h.useCase.Execute(r.Context(), shopID)
	if err != nil {
		if errors.Is(err, installShop.ErrInvalidInput) {
			h.logger.Warn("POST /shops/{id}/install - Invalid shop ID: %q", shopID)
			handlers.RespondBadRequest(w, msgInvalidShopID)
			return
		}

		h.logger.Error("POST /shops/{id}/install - Failed to install: shop_id=%s, error=%v", shopID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /shops/{id}/install - Installed: shop_id=%s, created=%d, existed=%d",
		shopID, result.Created, result.Existed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
