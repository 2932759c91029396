package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryDates/internal/api/handlers"
	getDisabledDates "github.com/m04kA/SMC-DeliveryDates/internal/usecase/get_disabled_dates"
)

const (
	msgInvalidParams = "нужен ровно один параметр: month=YYYY-MM или date=YYYY-MM-DD"
	msgInvalidValue  = "некорректный месяц или дата"
)

type Handler struct {
	useCase AvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/availability
// Query params: month=YYYY-MM либо date=YYYY-MM-DD
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]
	month := r.URL.Query().Get("month")
	date := r.URL.Query().Get("date")

	switch {
	case month != "" && date == "":
		result, err := h.useCase.Month(r.Context(), shopID, month)
		if err != nil {
			h.respondError(w, shopID, err)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, &MonthResponse{
			ShopID:   result.ShopID,
			Month:    result.Month,
			Disabled: result.DisabledDays,
		})

	case date != "" && month == "":
		result, err := h.useCase.Check(r.Context(), shopID, date)
		if err != nil {
			h.respondError(w, shopID, err)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, &DateResponse{
			ShopID:    result.ShopID,
			Date:      result.Date,
			Available: !result.Disabled,
		})

	default:
		h.logger.Warn("GET /shops/{id}/availability - Invalid parameters: month=%q, date=%q", month, date)
		handlers.RespondBadRequest(w, msgInvalidParams)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, shopID string, err error) {
	if errors.Is(err, getDisabledDates.ErrInvalidInput) {
		h.logger.Warn("GET /shops/{id}/availability - Invalid input: shop_id=%s, error=%v", shopID, err)
		handlers.RespondBadRequest(w, msgInvalidValue)
		return
	}

	h.logger.Error("GET /shops/{id}/availability - Failed: shop_id=%s, error=%v", shopID, err)
	handlers.RespondInternalError(w)
}
