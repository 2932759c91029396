package get_disabled_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryDates/internal/api/handlers"
	getDisabledDates "github.com/m04kA/SMC-DeliveryDates/internal/usecase/get_disabled_dates"
)

const (
	msgInvalidShopID = "некорректный ID магазина"
)

type Handler struct {
	useCase GetDisabledDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetDisabledDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/disabled-dates
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	result, err := h.useCase.Execute(r.Context(), shopID)
	if err != nil {
		if errors.Is(err, getDisabledDates.ErrInvalidInput) {
			h.logger.Warn("GET /shops/{id}/disabled-dates - Invalid shop ID: %q", shopID)
			handlers.RespondBadRequest(w, msgInvalidShopID)
			return
		}

		h.logger.Error("GET /shops/{id}/disabled-dates - Failed to get rules: shop_id=%s, error=%v", shopID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
