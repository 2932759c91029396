package delivery_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryDates/internal/api/handlers"
	deliveryGate "github.com/m04kA/SMC-DeliveryDates/internal/usecase/delivery_gate"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата доставки, ожидается YYYY-MM-DD"
	msgDateDisabled       = "доставка в выбранную дату недоступна"
)

type Handler struct {
	useCase DeliveryGateUseCase
	logger  Logger
}

func NewHandler(useCase DeliveryGateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleSet PUT /api/v1/shops/{shopId}/checkouts/{checkoutToken}/delivery-date
// Публичный endpoint - вызывается расширением checkout
func (h *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shopID := vars["shopId"]
	token := vars["checkoutToken"]

	var req SetDeliveryDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /checkouts/{token}/delivery-date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Pick(r.Context(), &deliveryGate.PickRequest{
		ShopID:        shopID,
		CheckoutToken: token,
		Dates:         req.Dates,
	})
	if err != nil {
		switch {
		case errors.Is(err, deliveryGate.ErrDateDisabled):
			h.logger.Warn("PUT /checkouts/{token}/delivery-date - Date disabled: shop_id=%s, error=%v", shopID, err)
			handlers.RespondUnprocessable(w, msgDateDisabled)

		case errors.Is(err, deliveryGate.ErrInvalidInput):
			h.logger.Warn("PUT /checkouts/{token}/delivery-date - Invalid input: shop_id=%s, error=%v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("PUT /checkouts/{token}/delivery-date - Failed to store selection: shop_id=%s, error=%v",
				shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /checkouts/{token}/delivery-date - Selection updated: shop_id=%s, state=%s", shopID, result.State)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandleClear DELETE /api/v1/shops/{shopId}/checkouts/{checkoutToken}/delivery-date
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["checkoutToken"]

	if err := h.useCase.Clear(r.Context(), token); err != nil {
		if errors.Is(err, deliveryGate.ErrInvalidInput) {
			h.logger.Warn("DELETE /checkouts/{token}/delivery-date - Invalid input: token=%q, error=%v", token, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}

		h.logger.Error("DELETE /checkouts/{token}/delivery-date - Failed to clear selection: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
