package get_shop_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryDates/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/dates"
	"github.com/m04kA/SMC-DeliveryDates/internal/service/weekdays"
)

const (
	msgInvalidShopID = "некорректный ID магазина"
)

type Handler struct {
	weekdays WeekdaysService
	dates    DatesService
	logger   Logger
}

func NewHandler(weekdays WeekdaysService, dates DatesService, logger Logger) *Handler {
	return &Handler{
		weekdays: weekdays,
		dates:    dates,
		logger:   logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	blocked, err := h.weekdays.Get(r.Context(), shopID)
	if err != nil {
		h.respondError(w, shopID, err)
		return
	}

	snap, err := h.dates.List(r.Context(), shopID)
	if err != nil {
		h.respondError(w, shopID, err)
		return
	}

	h.logger.Info("GET /shops/{id}/settings - Settings retrieved: shop_id=%s, blocked_days=%d, dates=%d",
		shopID, blocked.Len(), len(snap.Ranges))
	handlers.RespondJSON(w, http.StatusOK, ToResponse(shopID, blocked, snap))
}

func (h *Handler) respondError(w http.ResponseWriter, shopID string, err error) {
	if errors.Is(err, weekdays.ErrInvalidInput) || errors.Is(err, dates.ErrInvalidInput) {
		h.logger.Warn("GET /shops/{id}/settings - Invalid shop ID: %q", shopID)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	h.logger.Error("GET /shops/{id}/settings - Failed to load settings: shop_id=%s, error=%v", shopID, err)
	handlers.RespondInternalError(w)
}
